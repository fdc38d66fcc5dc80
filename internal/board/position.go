package board

import "fmt"

// Position represents a complete board state. It carries no notion of whose
// turn it is; turn order belongs to the layer driving the game.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// Occupancy bitboards (cached for efficiency)
	Occupied    [2]Bitboard // All pieces of each color
	AllOccupied Bitboard    // All pieces on the board

	// Live piece counters: [Color][PieceType]. Kept in step with the
	// bitboards on every placement and capture so the win check never
	// has to count bits.
	Counts [2][6]uint8
}

// NewPosition creates the starting position.
func NewPosition() *Position {
	pos, _ := ParsePlacement(StartPlacement)
	return pos
}

// Copy creates a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := *p
	return &newPos
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (p *Position) PieceAt(sq Square) Piece {
	bb := SquareBB(sq)

	// Check if square is occupied
	if p.AllOccupied&bb == 0 {
		return NoPiece
	}

	// Find the color
	var c Color
	if p.Occupied[White]&bb != 0 {
		c = White
	} else {
		c = Black
	}

	// Find the piece type
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return NewPiece(pt, c)
		}
	}

	return NoPiece
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return p.AllOccupied&SquareBB(sq) == 0
}

// Count returns the number of live pieces of the given color and type.
func (p *Position) Count(c Color, pt PieceType) int {
	return int(p.Counts[c][pt])
}

// setPiece places a piece on a square.
func (p *Position) setPiece(piece Piece, sq Square) {
	if piece == NoPiece {
		return
	}
	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] |= bb
	p.Occupied[c] |= bb
	p.AllOccupied |= bb
	p.Counts[c][pt]++
}

// removePiece removes a piece from a square and returns it.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.PieceAt(sq)
	if piece == NoPiece {
		return NoPiece
	}

	c := piece.Color()
	pt := piece.Type()
	bb := SquareBB(sq)

	p.Pieces[c][pt] &^= bb
	p.Occupied[c] &^= bb
	p.AllOccupied &^= bb
	p.Counts[c][pt]--

	return piece
}

// movePiece moves a piece from one square to another. The destination must be
// empty; captures remove the victim first.
func (p *Position) movePiece(from, to Square) {
	piece := p.PieceAt(from)
	if piece == NoPiece {
		return
	}

	c := piece.Color()
	pt := piece.Type()
	moveBB := SquareBB(from) | SquareBB(to)

	p.Pieces[c][pt] ^= moveBB
	p.Occupied[c] ^= moveBB
	p.AllOccupied ^= moveBB
}

// updateOccupied recalculates occupancy bitboards from piece bitboards.
func (p *Position) updateOccupied() {
	p.Occupied[White] = Empty
	p.Occupied[Black] = Empty

	for pt := Pawn; pt <= King; pt++ {
		p.Occupied[White] |= p.Pieces[White][pt]
		p.Occupied[Black] |= p.Pieces[Black][pt]
	}

	p.AllOccupied = p.Occupied[White] | p.Occupied[Black]
}

// recount rebuilds the per-type counters from the piece bitboards.
func (p *Position) recount() {
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			p.Counts[c][pt] = uint8(p.Pieces[c][pt].PopCount())
		}
	}
}

// AttemptMove validates a move for the given color and, if legal, applies it.
// The position is left untouched when the returned outcome is Illegal, and
// the error then wraps ErrIllegalMove.
func (p *Position) AttemptMove(c Color, from, to Square) (MoveOutcome, error) {
	outcome, err := p.validateMove(c, from, to)
	if err != nil {
		return outcome, err
	}

	if outcome.Kind == AppliedCapture {
		p.removePiece(to)
	}
	p.movePiece(from, to)

	return outcome, nil
}

// Winner reports whether one side has wiped out an entire enemy piece type.
// White's roster is scanned first, so if a hand-built position has both sides
// missing a type, Black is reported as the winner.
func (p *Position) Winner() (Color, bool) {
	for pt := Pawn; pt <= King; pt++ {
		if p.Counts[White][pt] == 0 {
			return Black, true
		}
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.Counts[Black][pt] == 0 {
			return White, true
		}
	}
	return NoColor, false
}

// Endangered returns the piece types of which the given color has exactly one
// piece left.
func (p *Position) Endangered(c Color) []PieceType {
	var out []PieceType
	for pt := Pawn; pt <= King; pt++ {
		if p.Counts[c][pt] == 1 {
			out = append(out, pt)
		}
	}
	return out
}

// String returns a visual representation of the position.
func (p *Position) String() string {
	s := "\n"
	for rank := 7; rank >= 0; rank-- {
		s += fmt.Sprintf("%d  ", rank+1)
		for file := 0; file < 8; file++ {
			sq := NewSquare(file, rank)
			piece := p.PieceAt(sq)
			if piece == NoPiece {
				s += ". "
			} else {
				s += piece.String() + " "
			}
		}
		s += "\n"
	}
	s += "\n   a b c d e f g h\n"
	return s
}

// Clear resets the position to an empty board.
func (p *Position) Clear() {
	*p = Position{}
}

// Validate checks the structural invariants every reachable position keeps:
// piece bitboards never overlap, the occupancy caches match their union, and
// the counters match the bitboard populations.
func (p *Position) Validate() error {
	var union [2]Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if overlap := (union[White] | union[Black]) & bb; overlap != 0 {
				return fmt.Errorf("square %s is held by more than one piece", overlap.LSB())
			}
			union[c] |= bb

			if int(p.Counts[c][pt]) != bb.PopCount() {
				return fmt.Errorf("%s %s counter is %d, bitboard has %d",
					c, pt, p.Counts[c][pt], bb.PopCount())
			}
		}
		if union[c] != p.Occupied[c] {
			return fmt.Errorf("%s occupancy cache does not match its piece bitboards", c)
		}
	}

	if union[White]|union[Black] != p.AllOccupied {
		return fmt.Errorf("total occupancy cache does not match the piece bitboards")
	}

	return nil
}
