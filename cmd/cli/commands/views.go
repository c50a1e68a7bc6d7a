package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// EighthsCmd creates the eighths command
func EighthsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "eighths [production_file]",
		Short: "Show complexity, page eighths and time estimates per scene",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}
			printEstimates(cmd.OutOrStdout(), plan.Estimates)
			return nil
		},
	}
}

// DOOPCmd creates the doop command
func DOOPCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doop [production_file]",
		Short: "Show the Day-Out-of-Days grid for cast and crew",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}
			printDOOP(cmd.OutOrStdout(), plan.DOOP, plan.TotalDays())
			return nil
		},
	}
}

// LocationsCmd creates the locations command
func LocationsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "locations [production_file]",
		Short: "Show location clusters in shooting order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}
			printClusters(cmd.OutOrStdout(), plan.Clusters, plan.RouteCost)
			return nil
		},
	}
}

// DepartmentsCmd creates the departments command
func DepartmentsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "departments [production_file]",
		Short: "Show per-department involvement, equipment and crew size",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}
			printDepartments(cmd.OutOrStdout(), plan.Departments)
			return nil
		},
	}
}

// ComplianceCmd creates the compliance command
func ComplianceCmd(app *AppContext) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "compliance [production_file]",
		Short: "Show crew day timings and labour rule findings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := app.Plan(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printCrewDays(out, plan.CrewDays)
			printFindings(out, plan.Violations)

			if strict && plan.HasViolations() {
				return fmt.Errorf("plan %s has compliance violations", plan.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any violation is found")

	return cmd
}
