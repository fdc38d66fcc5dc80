package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game over screen dimensions
const (
	GameOverWidth  = 400
	GameOverHeight = 250
)

// GameOverScreen announces the result and offers a rematch.
type GameOverScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	headline string
	detail   string
	summary  string

	rematchBtn *ModalButton
	closeBtn   *ModalButton

	// Callback
	onRematch func()
}

// NewGameOverScreen creates a new game over screen.
func NewGameOverScreen() *GameOverScreen {
	gs := &GameOverScreen{}
	gs.x = (ScreenWidth - GameOverWidth) / 2
	gs.y = (ScreenHeight - GameOverHeight) / 2

	btnW := 130
	btnH := 44
	btnY := gs.y + GameOverHeight - 24 - btnH
	gs.rematchBtn = NewModalButton(gs.x+GameOverWidth/2-btnW-8, btnY, btnW, btnH, "Rematch", true, func() { gs.handleRematch() })
	gs.closeBtn = NewModalButton(gs.x+GameOverWidth/2+8, btnY, btnW, btnH, "Close", false, func() { gs.Hide() })
	return gs
}

// Show displays the result. onRematch runs when a new game is requested.
func (gs *GameOverScreen) Show(headline, detail, summary string, onRematch func()) {
	gs.visible = true
	gs.headline = headline
	gs.detail = detail
	gs.summary = summary
	gs.onRematch = onRematch
}

// Hide closes the screen, leaving the final position on the board.
func (gs *GameOverScreen) Hide() {
	gs.visible = false
}

// IsVisible returns true if the screen is visible.
func (gs *GameOverScreen) IsVisible() bool {
	return gs.visible
}

// handleRematch handles the rematch button click.
func (gs *GameOverScreen) handleRematch() {
	gs.Hide()
	if gs.onRematch != nil {
		gs.onRematch()
	}
}

// Update handles input for the game over screen.
func (gs *GameOverScreen) Update(input *InputHandler) bool {
	if !gs.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		gs.Hide()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) || IsKeyJustPressed(ebiten.KeyN) {
		gs.handleRematch()
		return true
	}

	gs.rematchBtn.Update(input)
	gs.closeBtn.Update(input)

	// Game over screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (gs *GameOverScreen) AnyButtonHovered() bool {
	if !gs.visible {
		return false
	}
	return gs.rematchBtn.IsHovered() || gs.closeBtn.IsHovered()
}

// Draw renders the game over screen.
func (gs *GameOverScreen) Draw(screen *ebiten.Image, glass *GlassEffect) {
	if !gs.visible {
		return
	}

	// Blur what is behind the modal, then dim it
	if glass != nil && glass.IsEnabled() {
		glass.DrawGlassSimple(screen, 0, 0, screen.Bounds().Dx(), screen.Bounds().Dy(), modalTint, 3.0)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), modalOverlay, false)

	// Modal background and border
	vector.DrawFilledRect(screen, scaleF(gs.x), scaleF(gs.y), scaleF(GameOverWidth), scaleF(GameOverHeight), modalBg, false)
	vector.StrokeRect(screen, scaleF(gs.x), scaleF(gs.y), scaleF(GameOverWidth), scaleF(GameOverHeight), float32(UIScale*2), modalBorder, false)

	gs.drawCentered(screen, gs.headline, 22, gs.y+44, statusGameOver)
	gs.drawCentered(screen, gs.detail, defaultFontSize, gs.y+96, textSecondary)
	gs.drawCentered(screen, gs.summary, 12, gs.y+126, textMuted)

	gs.rematchBtn.Draw(screen)
	gs.closeBtn.Draw(screen)
}

func (gs *GameOverScreen) drawCentered(screen *ebiten.Image, s string, size float64, y int, c color.Color) {
	if s == "" {
		return
	}
	face := GetFaceWithSize(size * UIScale)
	if face == nil {
		return
	}
	w, _ := MeasureText(s, face)
	centerX := scaleD(gs.x) + scaleD(GameOverWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
