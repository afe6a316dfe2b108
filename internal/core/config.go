package core

// Fixed logical geometry of the device display.
const (
	ScreenW = 128 // display width in pixels
	ScreenH = 64  // display height in pixels
)

// RunStats summarises a finished or running ride for the host harness.
type RunStats struct {
	Score int   // Accumulated score
	Ticks int64 // Number of completed simulation ticks
	Seed  int64 // Entropy seed the run was started with
}
