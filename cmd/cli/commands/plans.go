package commands

import (
	"github.com/spf13/cobra"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/services"
)

// PlansCmd creates the plans command and its show subcommand
func PlansCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List plans saved to PostgreSQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.Database()
			if err != nil {
				return err
			}

			plans, err := services.ListPlans(app.Ctx, database, app.Logger)
			if err != nil {
				return err
			}

			printStoredPlans(cmd.OutOrStdout(), plans)
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <plan_id>",
		Short: "Show a saved plan's strips and findings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := app.Database()
			if err != nil {
				return err
			}

			detail, err := services.ShowPlan(app.Ctx, database, app.Logger, args[0])
			if err != nil {
				return err
			}

			printPlanDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	})

	return cmd
}
