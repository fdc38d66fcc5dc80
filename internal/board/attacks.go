package board

// Pre-computed attack tables for non-sliding pieces
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
	pawnAttacks   [2][64]Bitboard // [Color][Square]
	pawnPushes    [2][64]Bitboard // [Color][Square] - single push targets

	// Full slider reach on an empty board, by origin square. The
	// validator intersects these before walking the path square by
	// square, so no blocker-aware tables are kept.
	rookLineBB   [64]Bitboard
	bishopLineBB [64]Bitboard
	queenLineBB  [64]Bitboard
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initPawnAttacks()
	initLineMasks()
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves: 2+1 or 1+2 in any direction
		attacks := Empty

		// Up 2, left/right 1
		attacks |= (bb << 17) & NotFileA // NNE
		attacks |= (bb << 15) & NotFileH // NNW
		attacks |= (bb >> 17) & NotFileH // SSW
		attacks |= (bb >> 15) & NotFileA // SSE

		// Up 1, left/right 2
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE

		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// King moves: 1 square in any direction
		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()

		kingAttacks[sq] = attacks
	}
}

func initPawnAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// White pawn attacks (diagonal captures going up)
		pawnAttacks[White][sq] = bb.NorthEast() | bb.NorthWest()

		// Black pawn attacks (diagonal captures going down)
		pawnAttacks[Black][sq] = bb.SouthEast() | bb.SouthWest()

		// Pawn pushes (single push targets)
		pawnPushes[White][sq] = bb.North()
		pawnPushes[Black][sq] = bb.South()
	}
}

func initLineMasks() {
	diagonals := [4]Direction{NorthEast, SouthEast, SouthWest, NorthWest}

	for sq := A1; sq <= H8; sq++ {
		rookLineBB[sq] = (FileMask[sq.File()] | RankMask[sq.Rank()]) &^ SquareBB(sq)

		line := Empty
		for _, d := range diagonals {
			for bb := SquareBB(sq).Shift(d); bb != 0; bb = bb.Shift(d) {
				line |= bb
			}
		}
		bishopLineBB[sq] = line
		queenLineBB[sq] = rookLineBB[sq] | line
	}
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// PawnAttacks returns the pawn attack bitboard for a square and color.
func PawnAttacks(sq Square, c Color) Bitboard {
	return pawnAttacks[c][sq]
}

// PawnPushes returns the single-push target bitboard for a square and color.
func PawnPushes(sq Square, c Color) Bitboard {
	return pawnPushes[c][sq]
}

// RookLines returns every square a rook on sq could reach on an empty board.
func RookLines(sq Square) Bitboard {
	return rookLineBB[sq]
}

// BishopLines returns every square a bishop on sq could reach on an empty board.
func BishopLines(sq Square) Bitboard {
	return bishopLineBB[sq]
}

// QueenLines returns every square a queen on sq could reach on an empty board.
func QueenLines(sq Square) Bitboard {
	return queenLineBB[sq]
}
