package main

import (
	"context"

	"github.com/aretw0/turtlebench/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run every case once through the correctness check, without timing",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunCheck(ctx, cli.RunOptions{
			ConfigPath: configPath,
			Overrides:  overrides(cmd),
			Debug:      debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringSlice("strategies", nil, "Strategies to check (optics, draft, manual)")
	checkCmd.Flags().String("check", "", "Check mode: full, relaxed or none")
	checkCmd.Flags().Bool("json", false, "Emit one JSON object per case")
}
