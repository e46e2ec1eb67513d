package entity

// Color is the tri-state used for seats, board cells and the turn marker.
// ColorNone means "spectator" on a session, "empty" on a cell and "nobody" on the turn.
type Color string

const (
	ColorRed  Color = "red"
	ColorBlue Color = "blue"
	ColorNone Color = "none"
)

// FirstTurn is the color that moves first in a fresh game.
const FirstTurn = ColorRed

// Opposite - returns the other player color. ColorNone stays ColorNone.
func (that Color) Opposite() Color {
	switch that {
	case ColorRed:
		return ColorBlue
	case ColorBlue:
		return ColorRed
	default:
		return ColorNone
	}
}

// IsPlayer reports whether the color is one of the two seats.
func (that Color) IsPlayer() bool {
	return that == ColorRed || that == ColorBlue
}

func (that Color) Valid() bool {
	return that == ColorNone || that.IsPlayer()
}

func (that Color) String() string {
	return string(that)
}
