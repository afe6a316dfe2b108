package display

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/pico-peloton/internal/core"
)

// Framebuffer is a 1-bit pixel buffer. It implements draw.Image so the
// standard image and font packages can render into it, plus every Surface
// primitive except Flush.
type Framebuffer struct {
	width  int
	height int
	pixels []bool
	face   font.Face
}

// NewFramebuffer creates a buffer with the device's display geometry.
func NewFramebuffer() *Framebuffer {
	return NewFramebufferSize(core.ScreenW, core.ScreenH)
}

// NewFramebufferSize creates a buffer with custom dimensions.
func NewFramebufferSize(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]bool, width*height),
		face:   basicfont.Face7x13,
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// ColorModel implements image.Image.
func (f *Framebuffer) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds implements image.Image.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image.
func (f *Framebuffer) At(x, y int) color.Color {
	if f.Pixel(x, y) {
		return color.White
	}
	return color.Black
}

// Set implements draw.Image. Colors are thresholded at mid-gray.
func (f *Framebuffer) Set(x, y int, c color.Color) {
	g := color.GrayModel.Convert(c).(color.Gray)
	f.SetPixel(x, y, g.Y >= 0x80)
}

// Pixel reports whether the pixel at (x, y) is on.
// Out-of-bounds coordinates read as off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	return f.pixels[y*f.width+x]
}

// SetPixel switches a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = on
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	for i := range f.pixels {
		f.pixels[i] = false
	}
}

// Count returns the number of lit pixels.
func (f *Framebuffer) Count() int {
	n := 0
	for _, p := range f.pixels {
		if p {
			n++
		}
	}
	return n
}

// DrawImage copies img onto the buffer with its top-left at (x, y).
func (f *Framebuffer) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(f, dst, img, b.Min, draw.Src)
}

// DrawCircle draws a circle inside the square of side diameter at (x, y).
// Points are tested against the circle in doubled coordinates so even
// diameters stay symmetric.
func (f *Framebuffer) DrawCircle(x, y, diameter int, style Style) {
	if diameter <= 0 {
		return
	}
	cx := 2*x + diameter - 1
	cy := 2*y + diameter - 1
	outer := diameter * diameter
	inner := (diameter - 2) * (diameter - 2)

	for py := y; py < y+diameter; py++ {
		for px := x; px < x+diameter; px++ {
			dx := 2*px - cx
			dy := 2*py - cy
			d := dx*dx + dy*dy
			if d >= outer {
				continue
			}
			if style == Stroke && diameter > 2 && d < inner {
				continue
			}
			f.SetPixel(px, py, true)
		}
	}
}

// DrawLine draws a Bresenham line including both end points.
func (f *Framebuffer) DrawLine(x0, y0, x1, y1 int) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy

	for {
		f.SetPixel(x0, y0, true)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// DrawTriangle draws a triangle outline or a filled triangle.
func (f *Framebuffer) DrawTriangle(a, b, c image.Point, style Style) {
	if style == Fill {
		minX := core.Min(a.X, core.Min(b.X, c.X))
		maxX := core.Max(a.X, core.Max(b.X, c.X))
		minY := core.Min(a.Y, core.Min(b.Y, c.Y))
		maxY := core.Max(a.Y, core.Max(b.Y, c.Y))
		area := edge(a, b, c)
		for py := minY; py <= maxY; py++ {
			for px := minX; px <= maxX; px++ {
				p := image.Pt(px, py)
				w0, w1, w2 := edge(b, c, p), edge(c, a, p), edge(a, b, p)
				if area < 0 {
					w0, w1, w2 = -w0, -w1, -w2
				}
				if w0 >= 0 && w1 >= 0 && w2 >= 0 {
					f.SetPixel(px, py, true)
				}
			}
		}
	}
	f.DrawLine(a.X, a.Y, b.X, b.Y)
	f.DrawLine(b.X, b.Y, c.X, c.Y)
	f.DrawLine(c.X, c.Y, a.X, a.Y)
}

// edge is twice the signed area of triangle (a, b, p).
func edge(a, b, p image.Point) int {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// DrawText renders text with the built-in 7x13 face, baseline at y.
func (f *Framebuffer) DrawText(x, y int, text string) {
	d := font.Drawer{
		Dst:  f,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// TextWidth returns the advance of text in pixels.
func (f *Framebuffer) TextWidth(text string) int {
	return font.MeasureString(f.face, text).Ceil()
}
