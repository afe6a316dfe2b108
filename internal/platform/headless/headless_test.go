package headless

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/registry"
)

func TestRunToTickLimit(t *testing.T) {
	env := registry.Env{Config: config.Default(), Seed: 5, MaxTicks: 120}
	env.Config.Display.FlushLatency = 0

	stats, err := Run(context.Background(), env)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if stats.Ticks != 120 {
		t.Errorf("Expected 120 ticks, got %d", stats.Ticks)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	env := registry.Env{Config: config.Default(), Seed: 5}
	env.Config.Display.FlushLatency = time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := Run(ctx, env); err != nil {
		t.Errorf("Expected clean stop, got %v", err)
	}
}

func TestRegistered(t *testing.T) {
	f, err := registry.Lookup(FrontendID)
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if f.Title == "" {
		t.Error("Frontend should have a title")
	}
}
