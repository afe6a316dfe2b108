// Package display defines the drawing surface the firmware renders into and
// provides a 128x64 monochrome framebuffer implementation of it.
// The core computes every coordinate; surfaces do no layout.
package display

import (
	"errors"
	"image"
)

// ErrClosed is returned by Flush once the consumer of a surface has gone away.
var ErrClosed = errors.New("display: surface closed")

// Style selects how a closed primitive is drawn.
type Style uint8

const (
	Stroke Style = iota // 1px outline
	Fill                // solid
)

// Surface is the rendering collaborator of the firmware.
type Surface interface {
	// Clear turns every pixel off.
	Clear()

	// DrawImage draws img with its top-left corner at (x, y). Off pixels of
	// the image overwrite what is below.
	DrawImage(img image.Image, x, y int)

	// DrawCircle draws a circle whose bounding box starts at (x, y).
	DrawCircle(x, y, diameter int, style Style)

	// DrawLine draws a 1px line between two points, inclusive.
	DrawLine(x0, y0, x1, y1 int)

	// DrawTriangle draws a triangle through three points.
	DrawTriangle(a, b, c image.Point, style Style)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(x, y int, text string)

	// Flush submits the frame to the panel. It may block for the duration of
	// the transfer.
	Flush() error
}

// Initializer is implemented by surfaces that need a one-time bring-up
// before the first frame.
type Initializer interface {
	Init() error
}
