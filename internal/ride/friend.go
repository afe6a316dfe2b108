package ride

import "github.com/vovakirdan/pico-peloton/internal/core"

// FriendCount is the fixed number of randomized companions.
const FriendCount = 3

// Companion limits
const (
	FriendVelocityMin = 2
	FriendVelocityMax = 19

	// Offsets must stay strictly inside (FriendOffsetMin, FriendOffsetMax).
	FriendOffsetMin = -250
	FriendOffsetMax = 250
)

// Friend is a companion rider.
type Friend struct {
	Offset   int // Horizontal offset from the screen midpoint
	Velocity int // Speed; relative motion is Velocity minus the player's
}

// nudge changes the speed by one in the direction of the random bit.
func (f *Friend) nudge(up bool) {
	if up {
		f.Velocity = core.Min(f.Velocity+1, FriendVelocityMax)
	} else {
		f.Velocity = core.Max(f.Velocity-1, FriendVelocityMin)
	}
}

// advance moves the companion relative to the player. A move that would
// leave the band is dropped, so the rider stalls at the edge.
func (f *Friend) advance(playerVelocity int) {
	next := f.Offset + (f.Velocity - playerVelocity)
	if next > FriendOffsetMin && next < FriendOffsetMax {
		f.Offset = next
	}
}
