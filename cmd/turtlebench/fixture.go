package main

import (
	"github.com/aretw0/turtlebench/internal/cli"
	"github.com/spf13/cobra"
)

// fixtureCmd represents the fixture command
var fixtureCmd = &cobra.Command{
	Use:   "fixture",
	Short: "Export the fixture as a Mermaid graph",
	Long: `Outputs a Mermaid diagram (graph TD) of the variant's fixture. With --scenario and
--strategy it renders the updated state instead, highlighting the copied levels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		scenario, _ := cmd.Flags().GetString("scenario")
		strategy, _ := cmd.Flags().GetString("strategy")
		if variant == "" {
			variant = "cyclic"
		}

		return cli.RunFixture(cli.FixtureOptions{
			Variant:  variant,
			Scenario: scenario,
			Strategy: strategy,
		})
	},
}

func init() {
	rootCmd.AddCommand(fixtureCmd)
	fixtureCmd.Flags().String("scenario", "", "Scenario to apply: shallow or deep")
	fixtureCmd.Flags().String("strategy", "", "Strategy used for the update")
}
