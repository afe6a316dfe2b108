package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/platform/headless"
	"github.com/vovakirdan/pico-peloton/internal/registry"
)

// Minimum terminal size for the interactive frontends: the panel is one
// text row per two pixel rows, plus bezel and status lines.
const (
	minTermW = core.ScreenW + 4
	minTermH = core.ScreenH/2 + 5
)

var (
	flagFrontend string
	flagTicks    int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Ride on the emulated device",
	Long: `Power up the emulated device and ride.

Controls (default bindings, see keys in the config file):
  Left/A        - Slower
  Down/S/Space  - Center button (no effect on speed)
  Right/D       - Faster
  Ctrl+S        - Screenshot (terminal frontend)
  Q/Ctrl+C      - Quit

The ride is saved to the run history when you quit.

Examples:
  peloton run
  peloton run --frontend console
  peloton run --frontend headless --ticks 2000
  peloton run --seed 42`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Display frontend (default from config, see 'peloton frontends')")
	runCmd.Flags().Int64Var(&flagTicks, "ticks", 0, "Stop after this many ticks (0 = until quit)")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagFrontend != "" {
		cfg.Display.Frontend = flagFrontend
	}

	frontend, err := registry.Lookup(cfg.Display.Frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'peloton frontends' to see available frontends.")
		os.Exit(1)
	}

	interactive := frontend.ID != headless.FrontendID
	if interactive {
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < minTermW || h < minTermH) {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the panel needs %dx%d\n", w, h, minTermW, minTermH)
		}
	}

	logger := newLogger(cfg, interactive)
	store := openStore(cfg, logger)
	env := newEnv(cfg, logger, store)
	env.MaxTicks = flagTicks

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	logger.Info("starting ride", "frontend", frontend.ID, "seed", env.Seed, "player", env.Player)
	stats, runErr := frontend.Run(ctx, env)
	stop()

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running device: %v\n", runErr)
		os.Exit(1)
	}

	fmt.Printf("Score %d after %d ticks (seed %d)\n", stats.Score, stats.Ticks, stats.Seed)
}
