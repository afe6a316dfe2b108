package core

// Button is a discrete input event produced by one of the three physical
// buttons. Values are produced once per detected falling edge and consumed
// exactly once by the simulation.
type Button uint8

const (
	ButtonLeft   Button = iota // slow down
	ButtonCenter               // no effect on the ride
	ButtonRight                // speed up
)

// ButtonCount is the number of physical buttons on the board.
const ButtonCount = 3

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonCenter:
		return "Center"
	case ButtonRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// ParseButton maps a lowercase name ("left", "center", "right") to a Button.
func ParseButton(name string) (Button, bool) {
	switch name {
	case "left", "l":
		return ButtonLeft, true
	case "center", "c":
		return ButtonCenter, true
	case "right", "r":
		return ButtonRight, true
	}
	return 0, false
}
