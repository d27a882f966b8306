// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play               - Play a game
//	t2048 menu               - Start menu with recent runs
//	t2048 serve              - Start SSH server for remote play
//	t2048 runs               - List recently journalled runs
//	t2048 replay <run-id>    - Replay a journalled run
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: from config, 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.t2048/runs.db)
//	--config <path>     - Use a specific config file
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"

	// Import the game to register it
	_ "github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - slide tiles and join numbers in your terminal",
	Long: `2048 is a sliding-tile puzzle played on a 4x4 grid.

Slide the tiles with the arrow keys. When two tiles with the same number
touch, they merge into one. Every move spawns a new 2 or 4. The game ends
when the board is full and no neighbouring tiles match.

Every run is journalled (seed plus inputs) so it can be replayed later.

Available commands:
  play     - Play directly
  menu     - Start menu with recent runs
  serve    - Start SSH server for remote play
  runs     - List journalled runs
  replay   - Replay a journalled run

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 menu
  t2048 serve --ssh :2222
  t2048 replay 1b4e28ba-2fa1-11d2-883f-0016d3cca427`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
}

// loadConfig loads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}

	return cfg, cfg.Validate()
}

// newLogger creates the command logger. Without --log-file, logs go to
// fallback; interactive commands pass io.Discard so the alt screen stays clean.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(config.ExpandPath(flagLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the run journal. A missing journal is not fatal for play.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		logger.Warn("could not open run journal", "path", cfg.Storage.DBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the game runtime config for the current terminal.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TickRate,
		Seed:     flagSeed,
	}
}

// interactiveEnv prepares everything a TUI command needs.
// The returned cleanup closes the store and log file.
func interactiveEnv(cmd *cobra.Command) (tui.Env, core.RuntimeConfig, func()) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard, "t2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(cfg, logger)

	env := tui.Env{
		Store:   store,
		Palette: tui.NewPalette(cfg.Theme),
		Logger:  logger,
		Player:  os.Getenv("USER"),
	}

	cleanup := func() {
		if store != nil {
			store.Close()
		}
		closeLog()
	}

	return env, runtimeConfig(cfg), cleanup
}
