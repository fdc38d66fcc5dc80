// Package export renders positions as standalone SVG images.
package export

import (
	"fmt"
	"io"
	"os"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/extinction/internal/board"
)

const (
	cell   = 64
	margin = 24
)

// Unicode chess glyphs, indexed like Piece (white Pawn..King, then black).
var glyphs = [12]string{"♙", "♘", "♗", "♖", "♕", "♔", "♟", "♞", "♝", "♜", "♛", "♚"}

// Options selects optional annotations for an exported board.
type Options struct {
	// LastFrom and LastTo tint the squares of the most recent move.
	// Leave both at NoSquare to skip the highlight.
	LastFrom board.Square
	LastTo   board.Square
}

// DefaultOptions returns options with no annotations.
func DefaultOptions() Options {
	return Options{LastFrom: board.NoSquare, LastTo: board.NoSquare}
}

// DefaultFilename returns a timestamped name for an exported board image.
func DefaultFilename() string {
	return "extinction-" + time.Now().Format("20060102-150405") + ".svg"
}

// WriteBoardSVG renders the position as a complete SVG document.
func WriteBoardSVG(w io.Writer, pos *board.Position, opts Options) {
	size := cell*8 + margin*2

	last := board.Empty
	if opts.LastFrom != opts.LastTo {
		last = board.SquareBB(opts.LastFrom) | board.SquareBB(opts.LastTo)
	}

	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:#2e2a24")

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := margin + file*cell
			y := margin + (7-rank)*cell
			sq := board.NewSquare(file, rank)

			fill := "#b58863"
			if (file+rank)%2 == 1 {
				fill = "#f0d9b5"
			}
			canvas.Rect(x, y, cell, cell, "fill:"+fill)

			if last.IsSet(sq) {
				canvas.Rect(x, y, cell, cell, "fill:#b4be64;fill-opacity:0.45")
			}

			piece := pos.PieceAt(sq)
			if piece == board.NoPiece {
				continue
			}

			style := "text-anchor:middle;font-size:44px;fill:#1a1a1a"
			if piece.Color() == board.White {
				style = "text-anchor:middle;font-size:44px;fill:#ffffff;stroke:#1a1a1a;stroke-width:1"
			}
			canvas.Text(x+cell/2, y+cell-16, glyphs[piece], style)
		}
	}

	labelStyle := "text-anchor:middle;font-size:14px;fill:#d8d0c0;font-family:sans-serif"
	for file := 0; file < 8; file++ {
		x := margin + file*cell + cell/2
		canvas.Text(x, size-6, string(rune('a'+file)), labelStyle)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*cell + cell/2 + 5
		canvas.Text(margin/2, y, fmt.Sprintf("%d", rank+1), labelStyle)
	}

	canvas.End()
}

// WriteSVG renders the position with no annotations.
func WriteSVG(w io.Writer, pos *board.Position) {
	WriteBoardSVG(w, pos, DefaultOptions())
}

// SaveSVG writes the position to a file.
func SaveSVG(path string, pos *board.Position, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	WriteBoardSVG(f, pos, opts)
	return f.Close()
}
