package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
)

func TestParsePressSchedule(t *testing.T) {
	s, err := ParsePressSchedule("10:right, 10:r,25:left,30:center")
	if err != nil {
		t.Fatalf("ParsePressSchedule() failed: %v", err)
	}

	if got := s[10]; len(got) != 2 || got[0] != core.ButtonRight || got[1] != core.ButtonRight {
		t.Errorf("Tick 10: expected two Right presses, got %v", got)
	}
	if got := s[25]; len(got) != 1 || got[0] != core.ButtonLeft {
		t.Errorf("Tick 25: expected Left, got %v", got)
	}
	if got := s[30]; len(got) != 1 || got[0] != core.ButtonCenter {
		t.Errorf("Tick 30: expected Center, got %v", got)
	}

	empty, err := ParsePressSchedule("")
	if err != nil || len(empty) != 0 {
		t.Errorf("Empty schedule: got %v, %v", empty, err)
	}
}

func TestParsePressScheduleErrors(t *testing.T) {
	for _, in := range []string{"10", "x:left", "0:left", "-3:left", "10:up"} {
		if _, err := ParsePressSchedule(in); err == nil {
			t.Errorf("Expected error for %q", in)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.Default()
	schedule, _ := ParsePressSchedule("10:right,25:left")

	a, err := Simulate(context.Background(), cfg, 7, 400, schedule)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	b, _ := Simulate(context.Background(), cfg, 7, 400, schedule)

	if a.State != b.State || a.Frame != b.Frame {
		t.Error("Same seed and schedule produced different results")
	}
	if a.Stats.Ticks != 400 || a.Stats.Seed != 7 {
		t.Errorf("Unexpected stats %+v", a.Stats)
	}
}

func TestSimulatePresses(t *testing.T) {
	cfg := config.Default()
	schedule, _ := ParsePressSchedule("3:right,3:right,3:right,5:left")

	sim, err := Simulate(context.Background(), cfg, 1, 10, schedule)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if sim.State.PlayerVelocity != 6 {
		t.Errorf("Expected velocity 4+3-1 = 6, got %d", sim.State.PlayerVelocity)
	}
}

func TestPrintSimulation(t *testing.T) {
	sim, err := Simulate(context.Background(), config.Default(), 2, 40, nil)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	var buf bytes.Buffer
	PrintSimulation(&buf, sim, true)
	out := buf.String()

	for _, want := range []string{"seed      2", "ticks     40", "subtick   0", "player    velocity 4 offset -5", "friend 2", "lead"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") < core.ScreenH/2 {
		t.Error("Expected the frame to be printed")
	}
}
