package board

// moveTargets returns the candidate destination set for a piece, before any
// path resolution. Slider masks ignore blockers; the pawn mask folds them in
// because pushes and captures obey different occupancy rules.
func moveTargets(pt PieceType, c Color, from Square, occupied, enemy Bitboard) Bitboard {
	switch pt {
	case Pawn:
		return pawnTargets(c, from, occupied, enemy)
	case Knight:
		return KnightAttacks(from)
	case Bishop:
		return BishopLines(from)
	case Rook:
		return RookLines(from)
	case Queen:
		return QueenLines(from)
	case King:
		return KingAttacks(from)
	default:
		return Empty
	}
}

// pawnTargets assembles pushes and captures for one pawn. The double step is
// available only from the starting rank and only through an empty square.
func pawnTargets(c Color, from Square, occupied, enemy Bitboard) Bitboard {
	push := PawnPushes(from, c) &^ occupied

	var double Bitboard
	if c == White {
		double = (push & Rank3).North() &^ occupied
	} else {
		double = (push & Rank6).South() &^ occupied
	}

	return push | double | (PawnAttacks(from, c) & enemy)
}

// validateMove classifies an attempted move without touching the position.
// Checks run in a fixed order and the first failing one decides, so the
// reported reason is always the earliest applicable rejection.
func (p *Position) validateMove(c Color, from, to Square) (MoveOutcome, error) {
	if !from.IsValid() || !to.IsValid() {
		return rejectedOutcome(from, to), illegalf("square off the board")
	}
	if from == to {
		return rejectedOutcome(from, to), illegalf("%s to itself is not a move", from)
	}

	piece := p.PieceAt(from)
	if piece == NoPiece || piece.Color() != c {
		return rejectedOutcome(from, to), illegalf("no %s piece on %s", c, from)
	}
	pt := piece.Type()

	own := p.Occupied[c]
	enemy := p.Occupied[c.Other()]
	toBB := SquareBB(to)

	if own&toBB != 0 {
		return rejectedOutcome(from, to), illegalf("%s is occupied by an own piece", to)
	}

	if moveTargets(pt, c, from, own|enemy, enemy)&toBB == 0 {
		return rejectedOutcome(from, to), illegalf("%s on %s cannot reach %s", pt, from, to)
	}

	if pt.IsSlider() {
		switch resolvePath(from, to, own, enemy) {
		case pathBlocked:
			return rejectedOutcome(from, to), illegalf("path from %s to %s is blocked", from, to)
		case pathFriendly:
			return rejectedOutcome(from, to), illegalf("%s is occupied by an own piece", to)
		case pathCapture:
			return MoveOutcome{Kind: AppliedCapture, From: from, To: to, Piece: pt, Captured: p.PieceAt(to).Type()}, nil
		default:
			return MoveOutcome{Kind: AppliedQuiet, From: from, To: to, Piece: pt, Captured: NoPieceType}, nil
		}
	}

	if enemy&toBB != 0 {
		return MoveOutcome{Kind: AppliedCapture, From: from, To: to, Piece: pt, Captured: p.PieceAt(to).Type()}, nil
	}
	return MoveOutcome{Kind: AppliedQuiet, From: from, To: to, Piece: pt, Captured: NoPieceType}, nil
}

// LegalMoves returns every destination the piece on from can legally move to.
// The result is empty if the square is empty or holds the wrong color.
func (p *Position) LegalMoves(c Color, from Square) Bitboard {
	if !from.IsValid() {
		return Empty
	}
	piece := p.PieceAt(from)
	if piece == NoPiece || piece.Color() != c {
		return Empty
	}

	pt := piece.Type()
	own := p.Occupied[c]
	enemy := p.Occupied[c.Other()]

	targets := moveTargets(pt, c, from, own|enemy, enemy) &^ own
	if !pt.IsSlider() {
		return targets
	}

	legal := Empty
	for bb := targets; bb != 0; {
		to := bb.PopLSB()
		switch resolvePath(from, to, own, enemy) {
		case pathQuiet, pathCapture:
			legal = legal.Set(to)
		}
	}
	return legal
}
