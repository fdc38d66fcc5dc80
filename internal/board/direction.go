package board

// Direction identifies one of the eight rays a piece can travel along.
// Sliding-move validation fixes the direction up front and then walks it one
// step at a time, so boundary handling stays inside the shift primitives and
// never leaks into index arithmetic.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NoDirection Direction = 8
)

var directionNames = [9]string{
	"North", "NorthEast", "East", "SouthEast",
	"South", "SouthWest", "West", "NorthWest",
	"NoDirection",
}

// String returns the direction name.
func (d Direction) String() string {
	if d > NoDirection {
		return "NoDirection"
	}
	return directionNames[d]
}

// IsDiagonal returns true for the four diagonal directions.
func (d Direction) IsDiagonal() bool {
	return d == NorthEast || d == NorthWest || d == SouthEast || d == SouthWest
}

// DirectionBetween returns the direction of travel from one square toward
// another. Returns NoDirection if the squares are equal or do not share a
// rank, file, or diagonal.
func DirectionBetween(from, to Square) Direction {
	df := sign(to.File() - from.File())
	dr := sign(to.Rank() - from.Rank())

	if df == 0 && dr == 0 {
		return NoDirection
	}
	if df != 0 && dr != 0 && abs(to.File()-from.File()) != abs(to.Rank()-from.Rank()) {
		return NoDirection
	}

	switch {
	case df == 0 && dr > 0:
		return North
	case df == 0 && dr < 0:
		return South
	case dr == 0 && df > 0:
		return East
	case dr == 0 && df < 0:
		return West
	case df > 0 && dr > 0:
		return NorthEast
	case df > 0 && dr < 0:
		return SouthEast
	case df < 0 && dr > 0:
		return NorthWest
	default:
		return SouthWest
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
