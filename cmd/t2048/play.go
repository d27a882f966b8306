package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 directly.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  U/Z/Backspace    - Undo last move
  R/N              - New game
  P                - Pause
  Ctrl+S           - Save screenshot
  Esc/Q/Ctrl+C     - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	env, cfg, cleanup := interactiveEnv(cmd)

	game, err := registry.Create(t2048.GameID)
	if err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, env, cfg)

	// Close store before potential exit
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
