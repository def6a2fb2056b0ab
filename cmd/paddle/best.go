package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/platform/tui"
	"github.com/vovakirdan/tui-paddle/internal/storage"
)

var flagPlain bool

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best time and recent runs",
	Long: `Display the best survival time and the most recent runs.

By default an interactive board opens; use --plain for plain text output.

Examples:
  paddle best
  paddle best --plain`,
	Args: cobra.NoArgs,
	Run:  runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive board")
}

func runBest(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening records database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printBest(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunBoard(store, "paddle", width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error running board: %v\n", err)
		os.Exit(1)
	}
}

func printBest(store *storage.Store) {
	best, err := store.BestTime("paddle")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving best time: %v\n", err)
		os.Exit(1)
	}

	runs, err := store.RecentRuns("paddle", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Paddle - Best Times")
	fmt.Println()

	if best == 0 && len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'paddle play' to set the first record!")
		return
	}

	fmt.Printf("Best: %s\n", game.FormatTime(best))
	fmt.Println()

	if len(runs) == 0 {
		return
	}

	fmt.Printf("  %-4s  %-8s  %s\n", "#", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "--------", "----")
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %s\n", i+1, game.FormatTime(entry.Seconds), dateStr)
	}
}
