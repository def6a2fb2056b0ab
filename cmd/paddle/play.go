package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-paddle/internal/audio"
	"github.com/vovakirdan/tui-paddle/internal/config"
	"github.com/vovakirdan/tui-paddle/internal/core"
	"github.com/vovakirdan/tui-paddle/internal/game"
	"github.com/vovakirdan/tui-paddle/internal/platform/tui"
	"github.com/vovakirdan/tui-paddle/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a paddle session.

Controls:
  Left/A     - Move paddle left (left button)
  Right/D    - Move paddle right (right button)
  Space/Enter- Press both buttons (start, restart chord)
  Q/Ctrl+C   - Quit

Examples:
  paddle play
  paddle play --mute
  paddle play --config ./my-paddle.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load gameplay config
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open record storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open records database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up audio
	var player audio.Player = audio.NullPlayer{}
	if !flagMute {
		beepPlayer := audio.NewBeepPlayer()
		if audioErr := beepPlayer.Initialize(); audioErr != nil {
			log.Warn("audio unavailable, playing muted", "error", audioErr)
		} else {
			player = beepPlayer
			defer beepPlayer.Close()
		}
	}

	// Create the session
	var records game.RecordStore
	if store != nil {
		records = store.Records("paddle")
	}
	g := game.New(cfg, records)

	// Run the game
	runErr := tui.Run(g, store, player, runtime, cfg.Rules.RestartHoldMs)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
