package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "turtlebench",
	Short: "Benchmark immutable updates of deeply nested, self-referencing state",
	Long: `turtlebench compares lens, copy-on-write and hand-written copies when updating a
ten-level chain of turtles whose deepest level may point back at the root.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML or JSON configuration file")
	rootCmd.PersistentFlags().StringP("variant", "v", "", "Variant to run: cyclic, acyclic or relaxed (default from config: cyclic)")
	rootCmd.PersistentFlags().Bool("debug", false, "Write debug logs to stderr")
}
