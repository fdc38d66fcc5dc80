package board

import "fmt"

// OutcomeKind classifies the result of an attempted move.
type OutcomeKind uint8

const (
	// Illegal means the move was rejected and the position is unchanged.
	Illegal OutcomeKind = iota
	// AppliedQuiet means the move was applied to an empty destination.
	AppliedQuiet
	// AppliedCapture means the move was applied and removed an enemy piece.
	AppliedCapture
)

// String returns the outcome kind name.
func (k OutcomeKind) String() string {
	switch k {
	case AppliedQuiet:
		return "quiet"
	case AppliedCapture:
		return "capture"
	default:
		return "illegal"
	}
}

// MoveOutcome reports what AttemptMove did to a position. Piece and Captured
// are NoPieceType when the move never touched the board.
type MoveOutcome struct {
	Kind     OutcomeKind
	From     Square
	To       Square
	Piece    PieceType
	Captured PieceType
}

// Applied returns true if the move changed the position.
func (o MoveOutcome) Applied() bool {
	return o.Kind != Illegal
}

// String returns the outcome in coordinate notation (e.g., "d4e5 Pawn takes Queen").
func (o MoveOutcome) String() string {
	switch o.Kind {
	case AppliedQuiet:
		return fmt.Sprintf("%s%s %s", o.From, o.To, o.Piece)
	case AppliedCapture:
		return fmt.Sprintf("%s%s %s takes %s", o.From, o.To, o.Piece, o.Captured)
	default:
		return fmt.Sprintf("%s%s rejected", o.From, o.To)
	}
}

func rejectedOutcome(from, to Square) MoveOutcome {
	return MoveOutcome{Kind: Illegal, From: from, To: to, Piece: NoPieceType, Captured: NoPieceType}
}

// ParseMove parses a move in coordinate notation (e.g., "e2e4") into its
// origin and destination squares.
func ParseMove(s string) (Square, Square, error) {
	if len(s) != 4 {
		return NoSquare, NoSquare, fmt.Errorf("invalid move string: %s", s)
	}

	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, err
	}

	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, err
	}

	return from, to, nil
}
