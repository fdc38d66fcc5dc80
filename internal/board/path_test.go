package board

import "testing"

func TestDirectionBetween(t *testing.T) {
	tests := []struct {
		from, to Square
		want     Direction
	}{
		{E4, E8, North},
		{E4, E1, South},
		{E4, H4, East},
		{E4, A4, West},
		{E4, H7, NorthEast},
		{E4, A8, NorthWest},
		{E4, G2, SouthEast},
		{E4, B1, SouthWest},
		{E4, E4, NoDirection},
		{E4, F6, NoDirection}, // knight jump, not a ray
		{A1, B3, NoDirection},
	}

	for _, tc := range tests {
		if got := DirectionBetween(tc.from, tc.to); got != tc.want {
			t.Errorf("DirectionBetween(%s, %s) = %s, want %s", tc.from, tc.to, got, tc.want)
		}
	}
}

// TestResolvePath walks sliders across a sparse board and checks every
// classification the walk can produce.
func TestResolvePath(t *testing.T) {
	// White rook a1 and queen d1, black pawn d5.
	pos, err := ParsePlacement("8/8/8/3p4/8/8/8/R2Q4")
	if err != nil {
		t.Fatal("Error parsing placement:", err)
	}
	own := pos.Occupied[White]
	enemy := pos.Occupied[Black]

	tests := []struct {
		name     string
		from, to Square
		want     pathResult
	}{
		{"clear path to empty square", A1, C1, pathQuiet},
		{"own piece in the way", A1, H1, pathBlocked},
		{"own piece on destination", A1, D1, pathFriendly},
		{"enemy on destination", D1, D5, pathCapture},
		{"enemy in the way", D1, D8, pathBlocked},
		{"long clear file", A1, A8, pathQuiet},
		{"misaligned squares", A1, B3, pathBlocked},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolvePath(tc.from, tc.to, own, enemy); got != tc.want {
				t.Errorf("resolvePath(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

// TestStartingRooksAreWalledIn pins down the walk on the opening position:
// the pawn wall blocks every rook ray.
func TestStartingRooksAreWalledIn(t *testing.T) {
	pos := NewPosition()
	own := pos.Occupied[White]
	enemy := pos.Occupied[Black]

	if got := resolvePath(A1, A4, own, enemy); got != pathBlocked {
		t.Errorf("rook walk a1a4 through own pawn = %d, want blocked", got)
	}
	if got := pos.LegalMoves(White, A1); got != Empty {
		t.Errorf("rook on a1 has moves %#x at the start, want none", uint64(got))
	}
}
