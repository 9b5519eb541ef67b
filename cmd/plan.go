package cmd

import (
	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the mutation-group plan for a scenario",
		Long:  planLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := buildScenario(cmd)
			if err != nil {
				return err
			}

			specs, warnings, err := resolver.Resolve(sc)
			if err != nil {
				return err
			}

			summary.DisplayWarnings(warnings)
			summary.DisplayPlan(specs)

			return nil
		},
	}

	configureScenarioFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(planCmd)
}
