package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/varunisrani/thinkaiback-sub000/pkg/core/services"
)

// PlanCmd creates the plan command
func PlanCmd(app *AppContext) *cobra.Command {
	var save, publish, asJSON bool

	cmd := &cobra.Command{
		Use:   "plan [production_file]",
		Short: "Build the full shooting plan and print the stripboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(plan); err != nil {
					return fmt.Errorf("failed to encode plan: %w", err)
				}
			} else {
				printPlanSummary(out, plan)
				printStripboard(out, plan.Stripboard)
				printFindings(out, plan.Violations)
			}

			if save {
				database, err := app.Database()
				if err != nil {
					return err
				}
				if _, err := services.SavePlan(app.Ctx, database, app.Logger, plan); err != nil {
					return err
				}
				app.Logger.Info("Saved plan", zap.String("plan_id", plan.ID.String()))
			}

			if publish {
				client, err := app.SheetsClient()
				if err != nil {
					return err
				}
				board, err := services.PublishStripboard(app.Ctx, client, app.Logger, app.Cfg.StripboardSheetID, plan)
				if err != nil {
					return err
				}
				app.Logger.Info("Published stripboard", zap.String("tab", board.Title))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Save the plan to PostgreSQL")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish the stripboard to the configured spreadsheet")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the whole plan as JSON")

	return cmd
}
