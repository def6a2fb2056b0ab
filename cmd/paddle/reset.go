package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-paddle/internal/storage"
)

var flagKeepBest bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored records",
	Long: `Delete the recorded runs, and unless --keep-best is given, the
stored best time as well.

Examples:
  paddle reset
  paddle reset --keep-best`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagKeepBest, "keep-best", false, "Keep the best time, clear only the run history")
}

func runReset(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.ClearRuns("paddle"); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}

	if !flagKeepBest {
		if err := store.ClearBest("paddle"); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing best time: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Println("Records cleared.")
}
