package display

import "strings"

// Half-block glyphs: each text cell shows two vertically stacked pixels.
const (
	glyphEmpty = ' '
	glyphUpper = '▀'
	glyphLower = '▄'
	glyphFull  = '█'
)

// Cell returns the glyph for the pixel pair at column x, text row row.
func (f *Framebuffer) Cell(x, row int, invert bool) rune {
	top := f.Pixel(x, 2*row) != invert
	bottom := f.Pixel(x, 2*row+1) != invert
	switch {
	case top && bottom:
		return glyphFull
	case top:
		return glyphUpper
	case bottom:
		return glyphLower
	default:
		return glyphEmpty
	}
}

// Rows returns the number of text rows needed to show the buffer.
func (f *Framebuffer) Rows() int {
	return (f.height + 1) / 2
}

// HalfBlocks renders the buffer as text, one line per two pixel rows.
func (f *Framebuffer) HalfBlocks(invert bool) string {
	var sb strings.Builder
	sb.Grow(f.Rows() * (f.width*3 + 1))

	for row := 0; row < f.Rows(); row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < f.width; x++ {
			sb.WriteRune(f.Cell(x, row, invert))
		}
	}
	return sb.String()
}
