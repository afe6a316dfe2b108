// peloton emulates a two-core handheld ride game: a player rider, three
// companion riders and a scrolling landscape on a 128x64 monochrome panel.
//
// Usage:
//
//	peloton run                 - Ride on the emulated device
//	peloton simulate            - Headless scripted run, prints the final state
//	peloton serve               - Start SSH server, one device per session
//	peloton runs                - Show the run history
//	peloton frontends           - List display frontends
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.peloton, ./configs, built-in)
//	--seed <value>     - Entropy seed for reproducible rides
//	--db <path>        - Run history database
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/registry"
	"github.com/vovakirdan/pico-peloton/internal/storage"

	// Import frontends to register them
	_ "github.com/vovakirdan/pico-peloton/internal/platform/console"
	_ "github.com/vovakirdan/pico-peloton/internal/platform/headless"
	_ "github.com/vovakirdan/pico-peloton/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagPlayer   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "peloton",
	Short: "Pico Peloton - ride with the pack on an emulated handheld",
	Long: `Pico Peloton emulates a small two-core handheld: three buttons set your
speed, three companion riders drift around you, and you score by riding close
to them. The landscape scrolls with your speed.

Available commands:
  run        - Ride on the emulated device
  simulate   - Headless scripted run for regression checks
  serve      - Start SSH server for remote rides
  runs       - View the run history
  frontends  - List display frontends

Examples:
  peloton run
  peloton run --frontend console
  peloton simulate --ticks 400 --press 10:right,25:left --seed 7
  peloton serve --ssh :2222
  peloton runs`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Entropy seed (0 = config value, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name for the run history (default: current user)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(frontendsCmd)
}

// loadConfig loads the configuration and applies global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Entropy.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg
}

// newLogger creates the process logger. Interactive frontends own the
// terminal, so their logs go to ~/.peloton/peloton.log instead of stderr.
func newLogger(cfg config.Config, toFile bool) *log.Logger {
	out := os.Stderr
	if toFile {
		if f, err := openLogFile(); err == nil {
			out = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "peloton",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func openLogFile() (*os.File, error) {
	path, err := config.ExpandHome("~/.peloton/peloton.log")
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// resolveSeed picks the entropy seed: flag, then config, then the clock.
func resolveSeed(cfg config.Config) int64 {
	if cfg.Entropy.Seed != 0 {
		return cfg.Entropy.Seed
	}
	return time.Now().UnixNano()
}

// playerName returns the --player flag or the current user's name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}

// openStore opens the run history. Failure is not fatal: rides still work.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		return nil
	}
	return store
}

// newEnv assembles the frontend environment.
func newEnv(cfg config.Config, logger *log.Logger, store *storage.Store) registry.Env {
	return registry.Env{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Player: playerName(),
		Seed:   resolveSeed(cfg),
	}
}
