package board

import (
	"strings"
	"testing"
)

func TestNewPositionSetup(t *testing.T) {
	pos := NewPosition()

	if err := pos.Validate(); err != nil {
		t.Fatal("starting position invalid:", err)
	}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			if got := pos.Count(c, pt); got != int(StartCount[pt]) {
				t.Errorf("%s %s count = %d, want %d", c, pt, got, StartCount[pt])
			}
		}
	}

	if got := pos.AllOccupied.PopCount(); got != 32 {
		t.Errorf("starting position has %d pieces, want 32", got)
	}
	if got := pos.Placement(); got != StartPlacement {
		t.Errorf("Placement() = %q, want %q", got, StartPlacement)
	}
}

// TestExtinctionGame plays a short game where White hunts down the only black
// queen and wins by wiping out the type.
func TestExtinctionGame(t *testing.T) {
	pos := NewPosition()

	mustMove(t, pos, White, E2, E4)
	mustMove(t, pos, Black, D7, D5)
	mustMove(t, pos, White, E4, D5)
	mustMove(t, pos, Black, D8, D5)
	mustMove(t, pos, White, B1, C3)
	mustMove(t, pos, Black, A7, A6)

	if _, over := pos.Winner(); over {
		t.Fatal("game reported over before the queen fell")
	}

	outcome := mustMove(t, pos, White, C3, D5)
	if outcome.Kind != AppliedCapture || outcome.Captured != Queen {
		t.Fatalf("c3d5 = %s captured %s, want a queen capture", outcome.Kind, outcome.Captured)
	}

	winner, over := pos.Winner()
	if !over || winner != White {
		t.Fatalf("Winner() = %s, %t after queen extinction, want White, true", winner, over)
	}
	if got := pos.Count(Black, Queen); got != 0 {
		t.Errorf("black queen count = %d, want 0", got)
	}
	if err := pos.Validate(); err != nil {
		t.Error("final position invalid:", err)
	}
}

// TestWinnerScanOrder covers hand-built positions, including the corner where
// both sides are missing a type and the scan order decides.
func TestWinnerScanOrder(t *testing.T) {
	tests := []struct {
		name      string
		placement string
		winner    Color
		over      bool
	}{
		{"fresh game", StartPlacement, NoColor, false},
		{"black queen extinct", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR", White, true},
		{"white queen extinct", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR", Black, true},
		{"both queens extinct", "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR", Black, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, err := ParsePlacement(tc.placement)
			if err != nil {
				t.Fatal("Error parsing placement:", err)
			}
			winner, over := pos.Winner()
			if winner != tc.winner || over != tc.over {
				t.Errorf("Winner() = %s, %t, want %s, %t", winner, over, tc.winner, tc.over)
			}
		})
	}
}

func TestParsePlacementErrors(t *testing.T) {
	bad := []string{
		"8/8/8/8/8/8/8",           // seven ranks
		"9/8/8/8/8/8/8/8",         // bad digit
		"8/8/8/8/8/8/8/7",         // rank too short
		"8/8/8/8/8/8/8/RRRRRRRRR", // rank too long
		"x7/8/8/8/8/8/8/8",        // bad piece character
	}

	for _, placement := range bad {
		if _, err := ParsePlacement(placement); err == nil {
			t.Errorf("ParsePlacement(%q) accepted bad input", placement)
		}
	}
}

func TestCopyIsIndependent(t *testing.T) {
	pos := NewPosition()
	copied := pos.Copy()

	mustMove(t, pos, White, E2, E4)

	if copied.PieceAt(E2) == NoPiece {
		t.Error("move on the original leaked into the copy")
	}
	if *copied == *pos {
		t.Error("copy still equals the mutated original")
	}
}

func TestEndangered(t *testing.T) {
	pos := NewPosition()

	// Queen and king are the only singletons at the start.
	for c := White; c <= Black; c++ {
		got := pos.Endangered(c)
		if len(got) != 2 || got[0] != Queen || got[1] != King {
			t.Errorf("Endangered(%s) = %v, want [Queen King]", c, got)
		}
	}
}

func TestPositionString(t *testing.T) {
	art := NewPosition().String()

	if !strings.Contains(art, "8  r n b q k b n r \n") {
		t.Errorf("rank 8 row wrong:\n%s", art)
	}
	if !strings.Contains(art, "1  R N B Q K B N R \n") {
		t.Errorf("rank 1 row wrong:\n%s", art)
	}
	if !strings.HasSuffix(art, "   a b c d e f g h\n") {
		t.Errorf("file legend missing:\n%s", art)
	}
}
