package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journalled runs",
	Long: `Display the most recently journalled runs, newest first.

Use the run id with 'replay' to rebuild a run.

Examples:
  t2048 runs
  t2048 runs --limit 50`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
}

func runRuns(cmd *cobra.Command, _ []string) {
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

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats()
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	printRuns(os.Stdout, runs, stats)
}

// printRuns writes the run table and journal summary.
func printRuns(w io.Writer, runs []storage.RunEntry, stats *storage.Stats) {
	fmt.Fprintln(w, "Recent Runs")
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to start the journal!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-36s  %-16s  %-10s  %8s  %6s  %6s  %s\n", "Run", "When", "Player", "Score", "Best", "Moves", "Status")
	fmt.Fprintf(w, "  %-36s  %-16s  %-10s  %8s  %6s  %6s  %s\n", "---", "----", "------", "-----", "----", "-----", "------")

	for _, r := range runs {
		status := "left"
		if r.Finished {
			status = "over"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-36s  %-16s  %-10s  %8s  %6d  %6d  %s\n",
			r.RunID,
			humanize.Time(r.CreatedAt),
			player,
			humanize.Comma(int64(r.Score)),
			r.MaxTile,
			r.Moves,
			status,
		)
	}

	if stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s runs, %s finished, %s moves in total\n",
			humanize.Comma(int64(stats.Runs)),
			humanize.Comma(int64(stats.Finished)),
			humanize.Comma(stats.TotalMoves),
		)
	}
}
