// Package ui implements the graphical front end using Ebitengine.
package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/hailam/extinction/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager rasterizes the embedded piece SVGs and hands out textures.
type SpriteManager struct {
	pieces      map[board.Piece]*ebiten.Image
	size        int     // Display size in logical pixels
	renderScale float64 // Rasterize above display size so HiDPI scaling stays sharp
}

// NewSpriteManager creates a sprite manager with pieces of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		pieces:      make(map[board.Piece]*ebiten.Image),
		size:        size,
		renderScale: 3.0,
	}
	sm.loadPieces()
	return sm
}

// GetPiece returns the sprite for a piece.
func (sm *SpriteManager) GetPiece(p board.Piece) *ebiten.Image {
	return sm.pieces[p]
}

// pieceFiles maps pieces to their asset file paths.
var pieceFiles = map[board.Piece]string{
	board.NewPiece(board.Pawn, board.White):   "assets/pieces/wP.svg",
	board.NewPiece(board.Knight, board.White): "assets/pieces/wN.svg",
	board.NewPiece(board.Bishop, board.White): "assets/pieces/wB.svg",
	board.NewPiece(board.Rook, board.White):   "assets/pieces/wR.svg",
	board.NewPiece(board.Queen, board.White):  "assets/pieces/wQ.svg",
	board.NewPiece(board.King, board.White):   "assets/pieces/wK.svg",
	board.NewPiece(board.Pawn, board.Black):   "assets/pieces/bP.svg",
	board.NewPiece(board.Knight, board.Black): "assets/pieces/bN.svg",
	board.NewPiece(board.Bishop, board.Black): "assets/pieces/bB.svg",
	board.NewPiece(board.Rook, board.Black):   "assets/pieces/bR.svg",
	board.NewPiece(board.Queen, board.Black):  "assets/pieces/bQ.svg",
	board.NewPiece(board.King, board.Black):   "assets/pieces/bK.svg",
}

// loadPieces rasterizes all embedded SVGs at renderScale times the display size.
func (sm *SpriteManager) loadPieces() {
	renderSize := int(float64(sm.size) * sm.renderScale)

	for piece, path := range pieceFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.pieces[piece] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawPieceAt draws a piece with its top-left corner at the given screen
// pixel coordinates. displayScale is the HiDPI factor already applied to x, y.
func (sm *SpriteManager) DrawPieceAt(screen *ebiten.Image, p board.Piece, x, y int, displayScale float64) {
	sm.drawPiece(screen, p, x, y, displayScale, false)
}

// DrawEndangeredPieceAt draws a piece tinted red to flag a type down to its
// last survivor.
func (sm *SpriteManager) DrawEndangeredPieceAt(screen *ebiten.Image, p board.Piece, x, y int, displayScale float64) {
	sm.drawPiece(screen, p, x, y, displayScale, true)
}

func (sm *SpriteManager) drawPiece(screen *ebiten.Image, p board.Piece, x, y int, displayScale float64, endangered bool) {
	if p == board.NoPiece {
		return
	}
	sprite := sm.GetPiece(p)
	if sprite == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(displayScale/sm.renderScale, displayScale/sm.renderScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	if endangered {
		op.ColorScale.Scale(1.0, 0.72, 0.72, 1.0)
	}
	screen.DrawImage(sprite, op)
}

// Size returns the logical display size of piece sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}
