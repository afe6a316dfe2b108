package ride

import (
	"fmt"
	"image"

	"github.com/vovakirdan/pico-peloton/internal/display"
)

// Screen layout
const (
	Midpoint = 60 // x of a rider at offset zero
	PlayerY  = 54
	FriendY  = 44
	ScoreX   = 86 // six 7px digits flush with the right edge
	ScoreY   = 10 // baseline
)

// Render draws the player, the companions and the score.
func (g *Game) Render(s display.Surface) {
	g.DrawPlayer(s)
	g.DrawFriends(s)
	g.DrawScore(s)
}

// DrawPlayer draws the player as an outlined rider.
func (g *Game) DrawPlayer(s display.Surface) {
	drawRider(s, display.Stroke, image.Pt(Midpoint+g.playerOffset, PlayerY))
}

// DrawFriends draws the companions as solid riders.
func (g *Game) DrawFriends(s display.Surface) {
	for _, f := range g.friends {
		drawRider(s, display.Fill, image.Pt(Midpoint+f.Offset, FriendY))
	}
}

// DrawScore draws the score as six zero-padded digits.
func (g *Game) DrawScore(s display.Surface) {
	s.DrawText(ScoreX, ScoreY, fmt.Sprintf("%06d", g.score))
}

// drawRider draws a bicycle with its rider around m. The style only applies
// to the front frame triangle; everything else is outlined.
func drawRider(s display.Surface, style display.Style, m image.Point) {
	// Wheels
	s.DrawCircle(m.X+3, m.Y, 8, display.Stroke)
	s.DrawCircle(m.X-10, m.Y, 8, display.Stroke)

	// Frame
	s.DrawTriangle(
		image.Pt(m.X-3, m.Y-2),
		image.Pt(m.X+3, m.Y-2),
		image.Pt(m.X, m.Y+4),
		style,
	)
	s.DrawTriangle(
		image.Pt(m.X-3, m.Y-2),
		image.Pt(m.X-7, m.Y+4),
		image.Pt(m.X, m.Y+4),
		display.Stroke,
	)

	// Fork
	s.DrawLine(m.X+3, m.Y-2, m.X+7, m.Y+4)

	// Body, head, arms
	s.DrawLine(m.X-3, m.Y-2, m.X, m.Y-6)
	s.DrawCircle(m.X-2, m.Y-8, 3, display.Stroke)
	s.DrawLine(m.X, m.Y-6, m.X+2, m.Y-2)
}
