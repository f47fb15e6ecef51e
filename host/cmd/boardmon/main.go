// Command boardmon is the host side of board bring-up: it watches a
// board's debug channel and runs bring-up against a simulated board.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "boardmon",
	Short:         "Monitor and simulate board bring-up",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(monitorCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(boardsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
