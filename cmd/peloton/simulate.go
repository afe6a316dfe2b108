package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/device"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/ride"
)

var (
	flagSimTicks int64
	flagPresses  string
	flagShow     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the device headless with scripted button presses",
	Long: `Run the firmware with no display and a fixed press schedule, then print
the final simulation state. With the same seed and schedule the output is
always the same, which makes it useful for regression checks.

A press "N:button" happens after tick N and is handled by tick N+1.
Buttons are left, center and right (or l, c, r).

Examples:
  peloton simulate --ticks 400 --seed 7
  peloton simulate --ticks 400 --press 10:right,10:right,25:left
  peloton simulate --ticks 80 --show`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().Int64Var(&flagSimTicks, "ticks", 400, "Number of ticks to simulate")
	simulateCmd.Flags().StringVar(&flagPresses, "press", "", "Press schedule, e.g. 10:right,25:left")
	simulateCmd.Flags().BoolVar(&flagShow, "show", false, "Print the final frame")
}

// PressSchedule maps a tick count to the buttons pressed after that tick.
type PressSchedule map[int64][]core.Button

// ParsePressSchedule parses "10:right,25:left". Ticks start at 1.
func ParsePressSchedule(s string) (PressSchedule, error) {
	schedule := PressSchedule{}
	if strings.TrimSpace(s) == "" {
		return schedule, nil
	}

	for _, item := range strings.Split(s, ",") {
		tickStr, name, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("press %q: expected tick:button", item)
		}
		tick, err := strconv.ParseInt(tickStr, 10, 64)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("press %q: tick must be a positive integer", item)
		}
		b, ok := core.ParseButton(name)
		if !ok {
			return nil, fmt.Errorf("press %q: unknown button %q", item, name)
		}
		schedule[tick] = append(schedule[tick], b)
	}
	return schedule, nil
}

// scriptedSurface presses scheduled buttons from the worker after each frame,
// as an interrupt arriving between ticks would.
type scriptedSurface struct {
	*display.Headless
	board    *device.Board
	schedule PressSchedule
	frame    int64
}

func (s *scriptedSurface) Flush() error {
	if err := s.Headless.Flush(); err != nil {
		return err
	}
	s.frame++
	for _, b := range s.schedule[s.frame] {
		s.board.Press(b)
	}
	return nil
}

// Simulation is the result of a scripted run.
type Simulation struct {
	Stats core.RunStats
	State ride.State
	Frame string
}

// Simulate runs the firmware headless for ticks ticks.
func Simulate(ctx context.Context, cfg config.Config, seed, ticks int64, schedule PressSchedule) (Simulation, error) {
	board := device.NewBoard(entropy.NewOscillator(seed))
	surface := &scriptedSurface{
		Headless: display.NewHeadless(0),
		board:    board,
		schedule: schedule,
	}
	fw := device.New(board, surface, device.Options{
		Logger:   newLogger(cfg, false),
		Seed:     seed,
		MaxTicks: ticks,
	})

	if err := fw.Run(ctx); err != nil {
		return Simulation{}, err
	}

	st, _ := fw.State()
	return Simulation{
		Stats: fw.Stats(),
		State: st,
		Frame: surface.HalfBlocks(cfg.Display.Invert),
	}, nil
}

// PrintSimulation writes a simulation result in a stable text format.
func PrintSimulation(w io.Writer, sim Simulation, showFrame bool) {
	st := sim.State
	fmt.Fprintf(w, "seed      %d\n", sim.Stats.Seed)
	fmt.Fprintf(w, "ticks     %d\n", sim.Stats.Ticks)
	fmt.Fprintf(w, "score     %d\n", st.Score)
	fmt.Fprintf(w, "subtick   %d\n", st.SubTick)
	fmt.Fprintf(w, "player    velocity %d offset %d\n", st.PlayerVelocity, st.PlayerOffset)
	for i, f := range st.Friends {
		fmt.Fprintf(w, "friend %d  velocity %d offset %d\n", i, f.Velocity, f.Offset)
	}
	fmt.Fprintf(w, "lead      velocity %d offset %d\n", st.Lead.Velocity, st.Lead.Offset)
	if showFrame {
		fmt.Fprintln(w, sim.Frame)
	}
}

func runSimulate(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	schedule, err := ParsePressSchedule(flagPresses)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimTicks < 1 {
		fmt.Fprintln(os.Stderr, "Error: --ticks must be at least 1")
		os.Exit(1)
	}

	ticks := make([]int64, 0, len(schedule))
	for t := range schedule {
		ticks = append(ticks, t)
	}
	sort.Slice(ticks, func(i, j int) bool { return ticks[i] < ticks[j] })
	if len(ticks) > 0 && ticks[len(ticks)-1] >= flagSimTicks {
		fmt.Fprintf(os.Stderr, "Warning: presses after tick %d are never handled\n", flagSimTicks-1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim, err := Simulate(ctx, cfg, resolveSeed(cfg), flagSimTicks, schedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	PrintSimulation(os.Stdout, sim, flagShow)
}
