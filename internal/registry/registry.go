// Package registry provides a global registry of display frontends.
// Frontends register themselves in init() functions, allowing the CLI to
// discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pico-peloton/internal/config"
	"github.com/vovakirdan/pico-peloton/internal/core"
	"github.com/vovakirdan/pico-peloton/internal/storage"
)

// Env is everything a frontend needs to host one device.
type Env struct {
	Config   config.Config
	Store    *storage.Store // nil disables run history
	Logger   *log.Logger
	Player   string
	Seed     int64
	MaxTicks int64 // 0 = until the user quits
}

// Record saves a finished ride to the run history. Rides that never ticked
// and environments without a store are skipped.
func (e Env) Record(frontend string, stats core.RunStats) {
	if e.Store == nil || stats.Ticks == 0 {
		return
	}
	if _, err := e.Store.SaveRun(e.Player, frontend, stats); err != nil && e.Logger != nil {
		e.Logger.Warn("could not save run", "error", err)
	}
}

// RunFunc hosts one device until ctx ends, the user quits or the tick limit
// is reached, and returns the final stats.
type RunFunc func(ctx context.Context, env Env) (core.RunStats, error)

// Frontend describes a registered display frontend.
type Frontend struct {
	ID    string // e.g. "terminal", used by --frontend and in run history
	Title string
	Run   RunFunc
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

var (
	frontends = make(map[string]Frontend)
	mu        sync.RWMutex
)

// Register adds a frontend to the registry.
// Typically called from a frontend package's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(f Frontend) {
	mu.Lock()
	defer mu.Unlock()

	if f.ID == "" || f.Run == nil {
		panic("registry: frontend needs an ID and a Run function")
	}
	if _, exists := frontends[f.ID]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", f.ID))
	}

	frontends[f.ID] = f
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(frontends))
	for id, f := range frontends {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: f.Title,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the frontend registered under id.
func Lookup(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := frontends[id]
	if !ok {
		return Frontend{}, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f, nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := frontends[id]
	return ok
}
