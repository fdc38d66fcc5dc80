package board

import "testing"

// TestKnightAttacks checks the knight table against hand-counted targets,
// including the edge squares where most of the jumps fall off the board.
func TestKnightAttacks(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{B1, SquareBB(A3) | SquareBB(C3) | SquareBB(D2)},
		{A1, SquareBB(B3) | SquareBB(C2)},
		{H8, SquareBB(G6) | SquareBB(F7)},
		{D4, SquareBB(B3) | SquareBB(B5) | SquareBB(C2) | SquareBB(C6) |
			SquareBB(E2) | SquareBB(E6) | SquareBB(F3) | SquareBB(F5)},
	}

	for _, tc := range tests {
		t.Run(tc.sq.String(), func(t *testing.T) {
			if got := KnightAttacks(tc.sq); got != tc.want {
				t.Errorf("KnightAttacks(%s) = %#x, want %#x", tc.sq, uint64(got), uint64(tc.want))
			}
		})
	}
}

func TestKingAttacks(t *testing.T) {
	if got := KingAttacks(E4).PopCount(); got != 8 {
		t.Errorf("king on e4 attacks %d squares, want 8", got)
	}
	if got, want := KingAttacks(A1), SquareBB(A2)|SquareBB(B1)|SquareBB(B2); got != want {
		t.Errorf("KingAttacks(a1) = %#x, want %#x", uint64(got), uint64(want))
	}
	if got := KingAttacks(H8).PopCount(); got != 3 {
		t.Errorf("king on h8 attacks %d squares, want 3", got)
	}
}

func TestPawnAttacksEdges(t *testing.T) {
	tests := []struct {
		sq   Square
		c    Color
		want Bitboard
	}{
		{A2, White, SquareBB(B3)},
		{H2, White, SquareBB(G3)},
		{A7, Black, SquareBB(B6)},
		{H7, Black, SquareBB(G6)},
		{E4, White, SquareBB(D5) | SquareBB(F5)},
		{E5, Black, SquareBB(D4) | SquareBB(F4)},
	}

	for _, tc := range tests {
		if got := PawnAttacks(tc.sq, tc.c); got != tc.want {
			t.Errorf("PawnAttacks(%s, %s) = %#x, want %#x", tc.sq, tc.c, uint64(got), uint64(tc.want))
		}
	}
}

func TestPawnPushes(t *testing.T) {
	if got, want := PawnPushes(E2, White), SquareBB(E3); got != want {
		t.Errorf("PawnPushes(e2, White) = %#x, want %#x", uint64(got), uint64(want))
	}
	if got, want := PawnPushes(E7, Black), SquareBB(E6); got != want {
		t.Errorf("PawnPushes(e7, Black) = %#x, want %#x", uint64(got), uint64(want))
	}

	// Pushes off the last rank vanish.
	if got := PawnPushes(E8, White); got != Empty {
		t.Errorf("PawnPushes(e8, White) = %#x, want empty", uint64(got))
	}
	if got := PawnPushes(E1, Black); got != Empty {
		t.Errorf("PawnPushes(e1, Black) = %#x, want empty", uint64(got))
	}
}

func TestLineMasks(t *testing.T) {
	if got, want := RookLines(A1), (FileA|Rank1)&^SquareBB(A1); got != want {
		t.Errorf("RookLines(a1) = %#x, want %#x", uint64(got), uint64(want))
	}
	if got := RookLines(D4).PopCount(); got != 14 {
		t.Errorf("rook on d4 has %d candidate squares, want 14", got)
	}
	if got := BishopLines(D4).PopCount(); got != 13 {
		t.Errorf("bishop on d4 has %d candidate squares, want 13", got)
	}

	diag := SquareBB(B2) | SquareBB(C3) | SquareBB(D4) | SquareBB(E5) |
		SquareBB(F6) | SquareBB(G7) | SquareBB(H8)
	if got := BishopLines(A1); got != diag {
		t.Errorf("BishopLines(a1) = %#x, want the long diagonal %#x", uint64(got), uint64(diag))
	}

	for sq := A1; sq <= H8; sq++ {
		if QueenLines(sq) != RookLines(sq)|BishopLines(sq) {
			t.Fatalf("queen lines for %s are not the rook/bishop union", sq)
		}
		if QueenLines(sq).IsSet(sq) {
			t.Fatalf("line mask for %s contains its own origin", sq)
		}
	}
}
