package board

// pathResult classifies what a slider finds when it walks from its origin
// toward a destination.
type pathResult uint8

const (
	pathBlocked  pathResult = iota // a piece sits strictly between origin and destination
	pathQuiet                      // destination reached and empty
	pathCapture                    // destination reached, holds an enemy piece
	pathFriendly                   // destination reached, holds a friendly piece
)

// resolvePath walks one step at a time from origin toward dest and classifies
// the move. Every intermediate square must be empty; the destination itself is
// classified by who occupies it. Misaligned square pairs resolve as blocked.
func resolvePath(from, to Square, own, enemy Bitboard) pathResult {
	d := DirectionBetween(from, to)
	if d == NoDirection {
		return pathBlocked
	}

	occupied := own | enemy
	target := SquareBB(to)

	for bb := SquareBB(from).Shift(d); bb != 0; bb = bb.Shift(d) {
		if bb == target {
			switch {
			case own&bb != 0:
				return pathFriendly
			case enemy&bb != 0:
				return pathCapture
			default:
				return pathQuiet
			}
		}
		if occupied&bb != 0 {
			return pathBlocked
		}
	}
	return pathBlocked
}
