// Package headless runs the device with no panel attached, for soak runs and
// servers without a terminal.
package headless

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/device"
	"github.com/vovakirdan/pico-peloton/internal/display"
	"github.com/vovakirdan/pico-peloton/internal/entropy"
	"github.com/vovakirdan/pico-peloton/internal/registry"
)

// FrontendID is the registry ID of the headless frontend.
const FrontendID = "headless"

func init() {
	registry.Register(registry.Frontend{
		ID:    FrontendID,
		Title: "Headless (no display)",
		Run:   Run,
	})
}

// Run runs the device until ctx ends or the tick limit is reached.
func Run(ctx context.Context, env registry.Env) (core.RunStats, error) {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}

	surface := display.NewHeadless(env.Config.Display.FlushLatency)
	fw := device.New(device.NewBoard(entropy.NewOscillator(env.Seed)), surface, device.Options{
		Logger:   logger,
		Seed:     env.Seed,
		MaxTicks: env.MaxTicks,
	})

	err := fw.Run(ctx)
	stats := fw.Stats()
	logger.Info("ride finished", "score", stats.Score, "ticks", stats.Ticks, "frames", surface.Frames())

	env.Record(FrontendID, stats)
	return stats, err
}
