// paddle is a terminal port of a pocket paddle-and-ball survival game:
// keep the ball in play with ten lives while the clock runs, and try to
// beat your best time.
//
// Usage:
//
//	paddle play              - Play the game
//	paddle best              - Show the best time and recent runs
//	paddle serve             - Start SSH server for remote play
//	paddle reset             - Clear stored records
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible serves
//	--db <path>     - Set database path (default: ~/.paddle/records.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "paddle",
	Short: "Paddle - a one-player pong in your terminal",
	Long: `Paddle is a terminal survival game: bounce the ball off your paddle
for as long as you can. You start with 10 points and lose one each time
the ball gets past you; every so often the game shifts into a fast phase
where the ball moves twice as quick. Your score is the time you survive.

Available commands:
  play     - Play the game
  best     - Show the best time and recent runs
  serve    - Start SSH server for remote play
  reset    - Clear stored records

Examples:
  paddle play
  paddle best
  paddle serve --ssh :2222
  paddle play --config ./my-paddle.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.paddle/records.db", "Path to records database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resetCmd)
}
