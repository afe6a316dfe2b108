// Package scenery implements the two-layer parallax background: a slow star
// field and a fast meadow tied to the rider's speed. Both layers are one tile
// wide and are drawn twice so the viewport is always covered.
package scenery

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"

	"golang.org/x/image/bmp"

	"github.com/vovakirdan/pico-peloton/internal/display"
)

// Layout constants
const (
	TileWidth = 256 // width of a background tile in pixels
	NearY     = 16  // top row of the near layer
	FarPeriod = 20  // ticks per far-layer cycle
	FarStepAt = 9   // far layer moves when the cycle counter hits this value
	MoonX     = 40  // moon offset inside the far tile
	MoonY     = 2
	MoonSize  = 10
)

//go:embed sprites/bg_stars.bmp
var farTileBMP []byte

//go:embed sprites/background.bmp
var nearTileBMP []byte

// Background tracks the scroll offsets of both layers.
type Background struct {
	farShift  int
	nearShift int
	farMod    int

	far  image.Image
	near image.Image
}

// New decodes the embedded tiles and returns a background at offset zero.
func New() (*Background, error) {
	far, err := decodeTile("far", farTileBMP)
	if err != nil {
		return nil, err
	}
	near, err := decodeTile("near", nearTileBMP)
	if err != nil {
		return nil, err
	}
	return NewWithTiles(far, near), nil
}

// NewWithTiles creates a background from already decoded tiles.
func NewWithTiles(far, near image.Image) *Background {
	return &Background{far: far, near: near}
}

func decodeTile(name string, data []byte) (image.Image, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("scenery: cannot decode %s tile: %w", name, err)
	}
	if w := img.Bounds().Dx(); w != TileWidth {
		return nil, fmt.Errorf("scenery: %s tile is %dpx wide, expected %d", name, w, TileWidth)
	}
	return img, nil
}

// Advance moves the near layer by nearDelta and the far layer by one pixel
// once every FarPeriod calls. nearDelta must be negative.
func (b *Background) Advance(nearDelta int) {
	if nearDelta >= 0 {
		panic(fmt.Sprintf("scenery: shift must be negative, got %d", nearDelta))
	}

	b.farMod = (b.farMod + 1) % FarPeriod
	if b.farMod == FarStepAt {
		b.farShift = Wrap(b.farShift, -1)
	}

	b.nearShift = Wrap(b.nearShift, nearDelta)
}

// Wrap applies a non-positive shift to a tile position. Once a position has
// scrolled a full tile out, it jumps forward by one tile in the same step.
func Wrap(pos, shift int) int {
	if pos <= -TileWidth {
		return pos + TileWidth + shift
	}
	return pos + shift
}

// FarShift returns the far layer offset.
func (b *Background) FarShift() int {
	return b.farShift
}

// NearShift returns the near layer offset.
func (b *Background) NearShift() int {
	return b.nearShift
}

// FarMod returns the far layer cycle counter.
func (b *Background) FarMod() int {
	return b.farMod
}

// Draw renders both layers and the moon. The near layer is opaque, so the
// far layer must be drawn first.
func (b *Background) Draw(s display.Surface) {
	drawTile(s, b.far, b.farShift, 0)
	drawTile(s, b.near, b.nearShift, NearY)
	s.DrawCircle(b.farShift+MoonX, MoonY, MoonSize, display.Fill)
	s.DrawCircle(b.farShift+TileWidth+MoonX, MoonY, MoonSize, display.Fill)
}

func drawTile(s display.Surface, tile image.Image, shift, y int) {
	if tile == nil {
		return
	}
	s.DrawImage(tile, shift, y)
	s.DrawImage(tile, shift+TileWidth, y)
}
