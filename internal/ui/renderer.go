package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/extinction/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	LightSquare    color.RGBA
	DarkSquare     color.RGBA
	SelectedSquare color.RGBA
	LegalMoveColor color.RGBA
	CaptureRing    color.RGBA
	LastMoveColor  color.RGBA
	DangerColor    color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		LightSquare:    color.RGBA{240, 217, 181, 255}, // Tan
		DarkSquare:     color.RGBA{181, 136, 99, 255},  // Brown
		SelectedSquare: color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		CaptureRing:    color.RGBA{170, 80, 70, 220},   // Red ring on capture targets
		LastMoveColor:  color.RGBA{180, 190, 100, 90},  // Softer yellow-green
		DangerColor:    color.RGBA{255, 100, 100, 150}, // Red for endangered types
		Background:     color.RGBA{40, 44, 52, 255},    // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255}, // Light gray
	}
}

// Renderer handles all board drawing operations.
type Renderer struct {
	sprites    *SpriteManager
	theme      *Theme
	boardSize  int
	squareSize int
	flipped    bool    // Black's side at the bottom
	scale      float64 // HiDPI scale factor
}

// NewRenderer creates a new renderer.
func NewRenderer(boardSize, squareSize int) *Renderer {
	return &Renderer{
		sprites:    NewSpriteManager(squareSize),
		theme:      DefaultTheme(),
		boardSize:  boardSize,
		squareSize: squareSize,
		scale:      1.0,
	}
}

// SetScale sets the HiDPI scale factor for rendering.
func (r *Renderer) SetScale(scale float64) {
	r.scale = scale
}

// SetFlipped orients the board with Black's pieces at the bottom.
func (r *Renderer) SetFlipped(flipped bool) {
	r.flipped = flipped
}

// Flipped reports the current orientation.
func (r *Renderer) Flipped() bool {
	return r.flipped
}

// s returns the scaled value for rendering.
func (r *Renderer) s(v int) float32 {
	return float32(float64(v) * r.scale)
}

// DrawBoard draws the board squares and coordinate labels.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := board.NewSquare(file, rank)
			x, y := r.SquareToScreen(sq)

			var c color.RGBA
			if (rank+file)%2 == 0 {
				c = r.theme.DarkSquare
			} else {
				c = r.theme.LightSquare
			}

			vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
		}
	}

	r.drawCoordinates(screen)
}

// drawCoordinates draws file letters along the bottom edge and rank numbers
// along the left edge, colored to contrast with the square underneath.
func (r *Renderer) drawCoordinates(screen *ebiten.Image) {
	face := GetFaceWithSize(11 * r.scale)
	if face == nil {
		return
	}

	for file := 0; file < 8; file++ {
		bottomRank := 0
		if r.flipped {
			bottomRank = 7
		}
		sq := board.NewSquare(file, bottomRank)
		x, y := r.SquareToScreen(sq)

		label := string(rune('a' + file))
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x+r.squareSize-10)), float64(r.s(y+r.squareSize-16)))
		op.ColorScale.ScaleWithColor(r.labelColor(sq))
		text.Draw(screen, label, face, op)
	}

	for rank := 0; rank < 8; rank++ {
		leftFile := 0
		if r.flipped {
			leftFile = 7
		}
		sq := board.NewSquare(leftFile, rank)
		x, y := r.SquareToScreen(sq)

		label := strconv.Itoa(rank + 1)
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(r.s(x+3)), float64(r.s(y+2)))
		op.ColorScale.ScaleWithColor(r.labelColor(sq))
		text.Draw(screen, label, face, op)
	}
}

// labelColor picks the opposite square color so labels stay readable.
func (r *Renderer) labelColor(sq board.Square) color.RGBA {
	if (sq.Rank()+sq.File())%2 == 0 {
		return r.theme.LightSquare
	}
	return r.theme.DarkSquare
}

// DrawHighlights draws the last move, the selection and legal target markers.
// Capture targets get a ring, quiet targets a dot.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected board.Square, targets, enemy board.Bitboard, lastFrom, lastTo board.Square) {
	if lastFrom != board.NoSquare {
		r.highlightSquare(screen, lastFrom, r.theme.LastMoveColor)
	}
	if lastTo != board.NoSquare {
		r.highlightSquare(screen, lastTo, r.theme.LastMoveColor)
	}

	if selected != board.NoSquare {
		r.highlightSquare(screen, selected, r.theme.SelectedSquare)
	}

	targets.ForEach(func(sq board.Square) {
		if enemy.IsSet(sq) {
			r.drawCaptureRing(screen, sq)
		} else {
			r.drawMoveDot(screen, sq)
		}
	})
}

// highlightSquare draws a colored overlay on a square.
func (r *Renderer) highlightSquare(screen *ebiten.Image, sq board.Square, c color.RGBA) {
	if sq == board.NoSquare {
		return
	}
	x, y := r.SquareToScreen(sq)
	vector.DrawFilledRect(screen, r.s(x), r.s(y), r.s(r.squareSize), r.s(r.squareSize), c, false)
}

// drawMoveDot marks a quiet destination.
func (r *Renderer) drawMoveDot(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.15

	vector.DrawFilledCircle(screen, cx, cy, radius, r.theme.LegalMoveColor, false)
}

// drawCaptureRing marks a destination holding an enemy piece.
func (r *Renderer) drawCaptureRing(screen *ebiten.Image, sq board.Square) {
	x, y := r.SquareToScreen(sq)
	cx := r.s(x) + r.s(r.squareSize)/2
	cy := r.s(y) + r.s(r.squareSize)/2
	radius := r.s(r.squareSize) * 0.44

	vector.StrokeCircle(screen, cx, cy, radius, r.s(r.squareSize)*0.07, r.theme.CaptureRing, false)
}

// DrawPieces draws all pieces. Pieces on danger squares (a type down to one
// survivor) are tinted. Shake offsets come from the animation manager.
func (r *Renderer) DrawPieces(screen *ebiten.Image, pos *board.Position, dragging bool, dragSquare board.Square, danger board.Bitboard, anims *AnimationManager) {
	for sq := board.A1; sq <= board.H8; sq++ {
		if dragging && sq == dragSquare {
			continue
		}

		piece := pos.PieceAt(sq)
		if piece == board.NoPiece {
			continue
		}

		x, y := r.SquareToScreen(sq)

		if anims != nil {
			offsetX, offsetY := anims.GetShakeOffset(sq)
			x += int(offsetX)
			y += int(offsetY)
		}

		px, py := int(r.s(x)), int(r.s(y))
		if danger.IsSet(sq) {
			r.sprites.DrawEndangeredPieceAt(screen, piece, px, py, r.scale)
		} else {
			r.sprites.DrawPieceAt(screen, piece, px, py, r.scale)
		}
	}
}

// DrawDraggedPiece draws the piece being dragged, centered on the cursor.
// mouseX, mouseY are in logical coordinates.
func (r *Renderer) DrawDraggedPiece(screen *ebiten.Image, piece board.Piece, mouseX, mouseY int) {
	if piece == board.NoPiece {
		return
	}

	halfSize := int(r.s(r.squareSize)) / 2
	x := int(r.s(mouseX)) - halfSize
	y := int(r.s(mouseY)) - halfSize

	r.sprites.DrawPieceAt(screen, piece, x, y, r.scale)
}

// SquareToScreen converts a board square to logical screen coordinates.
func (r *Renderer) SquareToScreen(sq board.Square) (int, int) {
	file := sq.File()
	rank := sq.Rank()
	if r.flipped {
		file = 7 - file
		rank = 7 - rank
	}
	x := file * r.squareSize
	y := (7 - rank) * r.squareSize // Rank 1 at the bottom
	return x, y
}

// ScreenToSquare converts logical screen coordinates to a board square.
func (r *Renderer) ScreenToSquare(x, y int) board.Square {
	if x < 0 || x >= r.boardSize || y < 0 || y >= r.boardSize {
		return board.NoSquare
	}
	file := x / r.squareSize
	rank := 7 - (y / r.squareSize)
	if r.flipped {
		file = 7 - file
		rank = 7 - rank
	}
	return board.NewSquare(file, rank)
}

// BoardSize returns the board size in logical pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// SquareSize returns the size of one square in logical pixels.
func (r *Renderer) SquareSize() int {
	return r.squareSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
