package main

import (
	"fmt"

	"github.com/aretw0/turtlebench"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of turtlebench",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("turtlebench version %s\n", turtlebench.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
