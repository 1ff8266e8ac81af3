package main

import (
	"context"

	"github.com/aretw0/turtlebench/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Measure every strategy of the selected variant",
	Long: `Runs the "set property" and "set deep property" sessions. Each case is checked on
every call; a violation stops the run with a non-zero exit code.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunBench(ctx, cli.RunOptions{
			ConfigPath: configPath,
			Overrides:  overrides(cmd),
			Debug:      debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd.Flags())

	// 'run' is the default when no command is provided.
	addRunFlags(rootCmd.Flags())
	rootCmd.RunE = runCmd.RunE
}
