// Package ride implements the ride simulation: a player rider whose speed is
// set by the buttons, three companion riders drifting at random speeds, and
// a score that rewards riding close to the companions.
package ride

import (
	"github.com/vovakirdan/pico-peloton/internal/core"
)

// Player speed limits
const (
	VelocityMin = 1
	VelocityMax = 20

	// playerCenter is subtracted from the velocity to get the on-screen offset.
	playerCenter = (VelocityMax - VelocityMin) / 2
)

// Timing and scoring
const (
	TickCycle     = 40 // ticks per decimation cycle
	ScoreRange    = 13 // no reward at or beyond this distance
	ScoreMultiple = 10
)

// Initial state
const (
	initialVelocity   = 4
	initialLeadOffset = -20
)

// State is a read-only snapshot of the simulation.
type State struct {
	PlayerVelocity int
	PlayerOffset   int
	Friends        [FriendCount]Friend
	Lead           Friend
	SubTick        int
	Score          int
}

// Game is the simulation state machine. It advances one step per Tick and is
// owned by a single goroutine.
type Game struct {
	playerOffset   int // derived from velocity on every tick
	playerVelocity int

	friends [FriendCount]Friend

	// lead is tracked like a companion but never randomized, drawn or scored.
	lead Friend

	subTick int
	score   int
}

// New creates a game in its initial state.
func New() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset restores the initial state.
func (g *Game) Reset() {
	g.playerVelocity = initialVelocity
	g.playerOffset = 0
	g.friends = [FriendCount]Friend{
		{Offset: 20, Velocity: initialVelocity},
		{Offset: -20, Velocity: initialVelocity},
		{Offset: -40, Velocity: initialVelocity},
	}
	g.lead = Friend{Offset: initialLeadOffset, Velocity: initialVelocity}
	g.subTick = 0
	g.score = 0
}

// ProcessInput applies one button event. Only the player's velocity changes.
func (g *Game) ProcessInput(b core.Button) {
	switch b {
	case core.ButtonLeft:
		g.playerVelocity = core.Clamp(g.playerVelocity-1, VelocityMin, VelocityMax)
	case core.ButtonRight:
		g.playerVelocity = core.Clamp(g.playerVelocity+1, VelocityMin, VelocityMax)
	case core.ButtonCenter:
	}
}

// Tick advances the simulation by one step. bits holds one random bit per
// companion and is only consumed on decimation ticks.
func (g *Game) Tick(bits [FriendCount]bool) {
	// Position is a direct function of speed
	g.playerOffset = g.playerVelocity - playerCenter

	g.subTick = (g.subTick + 1) % TickCycle
	if g.subTick == 0 {
		for i := range g.friends {
			g.friends[i].nudge(bits[i])
			g.score += proximityScore(g.playerOffset, g.friends[i].Offset)
		}
	}

	for i := range g.friends {
		g.friends[i].advance(g.playerVelocity)
	}
	g.lead.advance(g.playerVelocity)
}

// proximityScore rewards companions within ScoreRange of the player.
func proximityScore(playerOffset, friendOffset int) int {
	return core.Max(0, ScoreRange-core.Abs(playerOffset-friendOffset)) * ScoreMultiple
}

// PlayerVelocity returns the player's speed.
func (g *Game) PlayerVelocity() int {
	return g.playerVelocity
}

// PlayerOffset returns the player's horizontal offset from the midpoint as of
// the last tick.
func (g *Game) PlayerOffset() int {
	return g.playerOffset
}

// Friends returns a copy of the companions.
func (g *Game) Friends() [FriendCount]Friend {
	return g.friends
}

// Lead returns the lead companion.
func (g *Game) Lead() Friend {
	return g.lead
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// SubTick returns the position in the decimation cycle.
func (g *Game) SubTick() int {
	return g.subTick
}

// State returns a snapshot of the simulation.
func (g *Game) State() State {
	return State{
		PlayerVelocity: g.playerVelocity,
		PlayerOffset:   g.playerOffset,
		Friends:        g.friends,
		Lead:           g.lead,
		SubTick:        g.subTick,
		Score:          g.score,
	}
}
