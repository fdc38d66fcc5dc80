package board

import (
	"strings"
	"testing"
)

// TestShiftsStayOnBoard verifies the edge masks: a shifted bit must fall off
// the board instead of wrapping across the A/H file seam.
func TestShiftsStayOnBoard(t *testing.T) {
	tests := []struct {
		name string
		bb   Bitboard
		dir  Direction
		want Bitboard
	}{
		{"east off H file", SquareBB(H4), East, Empty},
		{"west off A file", SquareBB(A4), West, Empty},
		{"northeast off H file", SquareBB(H4), NorthEast, Empty},
		{"southeast off H file", SquareBB(H4), SouthEast, Empty},
		{"northwest off A file", SquareBB(A4), NorthWest, Empty},
		{"southwest off A file", SquareBB(A4), SouthWest, Empty},
		{"north off rank 8", SquareBB(E8), North, Empty},
		{"south off rank 1", SquareBB(E1), South, Empty},
		{"east within board", SquareBB(E4), East, SquareBB(F4)},
		{"northeast within board", SquareBB(E4), NorthEast, SquareBB(F5)},
		{"northwest within board", SquareBB(E4), NorthWest, SquareBB(D5)},
		{"southwest within board", SquareBB(E4), SouthWest, SquareBB(D3)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bb.Shift(tc.dir); got != tc.want {
				t.Errorf("Shift(%s) = %#x, want %#x", tc.dir, uint64(got), uint64(tc.want))
			}
		})
	}
}

func TestPopLSBOrder(t *testing.T) {
	bb := SquareBB(C2) | SquareBB(A1) | SquareBB(H8)

	want := []Square{A1, C2, H8}
	for i, w := range want {
		if got := bb.PopLSB(); got != w {
			t.Errorf("pop %d = %s, want %s", i, got, w)
		}
	}
	if !bb.Empty() {
		t.Error("bitboard not empty after popping all bits")
	}
}

func TestEmptyBitboardHasNoSquares(t *testing.T) {
	if got := Empty.LSB(); got != NoSquare {
		t.Errorf("LSB of empty board = %s, want %s", got, NoSquare)
	}
	if got := Empty.MSB(); got != NoSquare {
		t.Errorf("MSB of empty board = %s, want %s", got, NoSquare)
	}
	if got := Empty.PopCount(); got != 0 {
		t.Errorf("PopCount of empty board = %d, want 0", got)
	}
}

func TestBitboardString(t *testing.T) {
	art := (SquareBB(A1) | SquareBB(H8)).String()

	if !strings.Contains(art, "8 . . . . . . . 1 \n") {
		t.Errorf("rank 8 row wrong:\n%s", art)
	}
	if !strings.Contains(art, "1 1 . . . . . . . \n") {
		t.Errorf("rank 1 row wrong:\n%s", art)
	}
	if !strings.HasSuffix(art, "  a b c d e f g h\n") {
		t.Errorf("file legend missing:\n%s", art)
	}
}
