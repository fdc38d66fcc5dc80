package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartPlacement describes the standard starting position. The format is the
// piece placement field of FEN: ranks from 8 down to 1 separated by slashes,
// uppercase for White, digits for runs of empty squares.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement builds a position from a placement string.
func ParsePlacement(placement string) (*Position, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("invalid placement: need 8 ranks, got %d", len(ranks))
	}

	pos := &Position{}

	for i, rankStr := range ranks {
		rank := 7 - i // Placement starts from rank 8
		file := 0

		for _, c := range rankStr {
			if file > 7 {
				return nil, fmt.Errorf("too many squares in rank %d", rank+1)
			}

			if c >= '1' && c <= '8' {
				// Skip empty squares
				file += int(c - '0')
			} else {
				// Place a piece
				piece := PieceFromChar(byte(c))
				if piece == NoPiece {
					return nil, fmt.Errorf("invalid piece character: %c", c)
				}
				pos.setPiece(piece, NewSquare(file, rank))
				file++
			}
		}

		if file != 8 {
			return nil, fmt.Errorf("invalid number of squares in rank %d: got %d", rank+1, file)
		}
	}

	// Rebuild derived state from the piece bitboards
	pos.updateOccupied()
	pos.recount()

	return pos, nil
}

// Placement returns the placement string for the position.
func (p *Position) Placement() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(NewSquare(file, rank))
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(piece.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}
