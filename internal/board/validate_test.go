package board

import (
	"errors"
	"testing"
)

func mustMove(t *testing.T, pos *Position, c Color, from, to Square) MoveOutcome {
	t.Helper()
	outcome, err := pos.AttemptMove(c, from, to)
	if err != nil {
		t.Fatalf("move %s%s for %s: %v", from, to, c, err)
	}
	return outcome
}

// TestAttemptMoveOutcomes runs single moves against the opening position and
// checks the outcome kind. Rejected moves must leave the position untouched
// and report an error wrapping ErrIllegalMove.
func TestAttemptMoveOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		from, to Square
		want     OutcomeKind
	}{
		{"pawn single push", White, E2, E3, AppliedQuiet},
		{"pawn double push", White, E2, E4, AppliedQuiet},
		{"knight development", White, B1, C3, AppliedQuiet},
		{"black pawn double push", Black, E7, E5, AppliedQuiet},
		{"same square", White, E2, E2, Illegal},
		{"empty origin", White, E4, E5, Illegal},
		{"enemy origin", White, E7, E6, Illegal},
		{"black moving a white piece", Black, E2, E4, Illegal},
		{"friendly destination", White, D1, D2, Illegal},
		{"knight geometry miss", White, B1, B3, Illegal},
		{"rook through own pawn", White, A1, A5, Illegal},
		{"bishop boxed in", White, F1, C4, Illegal},
		{"queen diagonal through pawn", White, D1, H5, Illegal},
		{"pawn triple push", White, E2, E5, Illegal},
		{"pawn diagonal without capture", White, E2, F3, Illegal},
		{"pawn backward", White, E2, E1, Illegal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := NewPosition()
			before := *pos

			outcome, err := pos.AttemptMove(tc.color, tc.from, tc.to)
			if outcome.Kind != tc.want {
				t.Fatalf("AttemptMove(%s, %s, %s) = %s, want %s", tc.color, tc.from, tc.to, outcome.Kind, tc.want)
			}

			if tc.want == Illegal {
				if err == nil {
					t.Fatal("rejected move returned no error")
				}
				if !errors.Is(err, ErrIllegalMove) {
					t.Errorf("error %v does not wrap ErrIllegalMove", err)
				}
				if *pos != before {
					t.Error("rejected move changed the position")
				}
				return
			}

			if err != nil {
				t.Fatalf("legal move returned error: %v", err)
			}
			if *pos == before {
				t.Error("applied move left the position unchanged")
			}
			if err := pos.Validate(); err != nil {
				t.Errorf("position invalid after move: %v", err)
			}
		})
	}
}

// TestPawnCaptureChain trades pawns back and forth through the center and
// checks the captured piece reported at every step.
func TestPawnCaptureChain(t *testing.T) {
	pos := NewPosition()

	steps := []struct {
		color    Color
		from, to Square
		want     OutcomeKind
		captured PieceType
	}{
		{White, D2, D4, AppliedQuiet, NoPieceType},
		{Black, E7, E5, AppliedQuiet, NoPieceType},
		{White, D4, E5, AppliedCapture, Pawn},
		{Black, D7, D6, AppliedQuiet, NoPieceType},
		{White, E5, D6, AppliedCapture, Pawn},
		{Black, C7, D6, AppliedCapture, Pawn},
	}

	for i, st := range steps {
		outcome, err := pos.AttemptMove(st.color, st.from, st.to)
		if err != nil {
			t.Fatalf("step %d (%s%s): %v", i, st.from, st.to, err)
		}
		if outcome.Kind != st.want || outcome.Captured != st.captured {
			t.Fatalf("step %d (%s%s) = %s captured %s, want %s captured %s",
				i, st.from, st.to, outcome.Kind, outcome.Captured, st.want, st.captured)
		}
	}

	if got := pos.Count(Black, Pawn); got != 6 {
		t.Errorf("black has %d pawns, want 6", got)
	}
	if got := pos.Count(White, Pawn); got != 7 {
		t.Errorf("white has %d pawns, want 7", got)
	}
	if err := pos.Validate(); err != nil {
		t.Error("position invalid after trades:", err)
	}
}

// A pawn blocked head-on can neither push through nor capture forward.
func TestPawnCannotCaptureForward(t *testing.T) {
	pos := NewPosition()
	mustMove(t, pos, White, E2, E4)
	mustMove(t, pos, Black, E7, E5)

	if _, err := pos.AttemptMove(White, E4, E5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("forward capture e4e5 allowed: %v", err)
	}
}

// TestPawnDoubleStepBlocked covers the two ways a double step dies: a piece
// on the intermediate square, and a pawn that already left its starting rank.
func TestPawnDoubleStepBlocked(t *testing.T) {
	// White knight parked directly in front of the e2 pawn.
	pos, err := ParsePlacement("8/8/8/8/8/4N3/4P3/8")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}
	if _, err := pos.AttemptMove(White, E2, E4); !errors.Is(err, ErrIllegalMove) {
		t.Error("double step through an occupied square allowed")
	}

	// Lone pawn already on e3.
	pos, err = ParsePlacement("8/8/8/8/8/4P3/8/8")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}
	if _, err := pos.AttemptMove(White, E3, E5); !errors.Is(err, ErrIllegalMove) {
		t.Error("double step from outside the starting rank allowed")
	}
	if outcome := mustMove(t, pos, White, E3, E4); outcome.Kind != AppliedQuiet {
		t.Errorf("single push e3e4 = %s, want %s", outcome.Kind, AppliedQuiet)
	}
}

// A rook can slide up to its own pawn but never through or onto it.
func TestRookBlockedByOwnPawn(t *testing.T) {
	pos, err := ParsePlacement("8/8/8/8/P7/8/8/R7")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}

	if _, err := pos.AttemptMove(White, A1, A8); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("a1a8 through the a4 pawn allowed: %v", err)
	}
	if _, err := pos.AttemptMove(White, A1, A4); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("a1a4 onto the friendly pawn allowed: %v", err)
	}

	want := SquareBB(A2) | SquareBB(A3) | (RankMask[0] &^ SquareBB(A1))
	if got := pos.LegalMoves(White, A1); got != want {
		t.Errorf("LegalMoves(White, a1) = %#x, want %#x", uint64(got), uint64(want))
	}
}

// A lone knight reaches every candidate square, board edges aside.
func TestLoneKnightMoves(t *testing.T) {
	pos, err := ParsePlacement("8/8/8/8/8/8/8/1N6")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}

	want := SquareBB(A3) | SquareBB(C3) | SquareBB(D2)
	if got := pos.LegalMoves(White, B1); got != want {
		t.Errorf("LegalMoves(White, b1) = %#x, want %#x", uint64(got), uint64(want))
	}

	if outcome := mustMove(t, pos, White, B1, D2); outcome.Kind != AppliedQuiet {
		t.Errorf("b1d2 = %s, want %s", outcome.Kind, AppliedQuiet)
	}
}

// A pawn's diagonal exists only while an enemy piece stands on it.
func TestPawnDiagonalNeedsEnemy(t *testing.T) {
	pos, err := ParsePlacement("8/8/8/8/3P4/8/8/8")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}
	if _, err := pos.AttemptMove(White, D4, E5); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("d4e5 onto an empty diagonal allowed: %v", err)
	}

	pos, err = ParsePlacement("8/8/8/4p3/3P4/8/8/8")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}
	outcome := mustMove(t, pos, White, D4, E5)
	if outcome.Kind != AppliedCapture || outcome.Captured != Pawn {
		t.Errorf("d4e5 = %s captured %s, want %s captured %s",
			outcome.Kind, outcome.Captured, AppliedCapture, Pawn)
	}
}

func TestLegalMovesAtStart(t *testing.T) {
	pos := NewPosition()

	tests := []struct {
		color Color
		from  Square
		want  Bitboard
	}{
		{White, B1, SquareBB(A3) | SquareBB(C3)},
		{White, E2, SquareBB(E3) | SquareBB(E4)},
		{White, A1, Empty},
		{White, D1, Empty},
		{White, E1, Empty},
		{Black, G8, SquareBB(F6) | SquareBB(H6)},
		{Black, E2, Empty}, // wrong color
		{White, E4, Empty}, // empty square
	}

	for _, tc := range tests {
		if got := pos.LegalMoves(tc.color, tc.from); got != tc.want {
			t.Errorf("LegalMoves(%s, %s) = %#x, want %#x", tc.color, tc.from, uint64(got), uint64(tc.want))
		}
	}
}
