package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// errRunMismatch is returned when a replay does not reproduce the journalled result.
var errRunMismatch = errors.New("replay does not match journalled run")

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Replay a journalled run",
	Long: `Rebuild a journalled run from its seed and inputs, print the final
board and check it against the stored score and best tile.

Examples:
  t2048 replay 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}

	run, err := store.RunByID(args[0])
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run with id %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 't2048 runs' to see journalled runs.")
		os.Exit(1)
	}

	if err := replayRun(os.Stdout, *run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// replayRun replays run, prints the final board and verifies the result.
func replayRun(w io.Writer, run storage.RunEntry) error {
	engine, err := t2048.Replay(run.Seed, run.Inputs)
	if err != nil {
		return fmt.Errorf("replay %s: %w", run.RunID, err)
	}

	fmt.Fprintf(w, "Run %s (seed %d, %d inputs)\n\n", run.RunID, run.Seed, len(run.Inputs))
	fmt.Fprint(w, t2048.FormatBoard(engine.Board()))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score: %s  Best tile: %d  Moves: %d\n",
		humanize.Comma(int64(engine.Score())),
		engine.MaxTile(),
		engine.HistoryLen(),
	)
	if engine.GameOver() {
		fmt.Fprintln(w, "Game over")
	}

	if engine.Score() != run.Score || engine.MaxTile() != run.MaxTile {
		return fmt.Errorf("%w: journalled score %d / best tile %d", errRunMismatch, run.Score, run.MaxTile)
	}
	fmt.Fprintln(w, "Verified against journal.")
	return nil
}
