package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Welcome screen dimensions
const (
	WelcomeWidth  = 420
	WelcomeHeight = 400
	WelcomePadX   = 32
	WelcomePadY   = 24
)

// Modal colors (shared with the help overlay)
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
	modalTint    = color.RGBA{30, 32, 36, 200}
)

// rulesLines is the short variant summary shown on first launch.
var rulesLines = []string{
	"Standard piece movement. No check, no castling, no promotion.",
	"Kings are ordinary pieces and can be captured.",
	"Lose every piece of any one type and you lose the game.",
}

// WelcomeScreen is shown on first launch.
type WelcomeScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	// Widgets
	nameInput *TextInput
	startBtn  *ModalButton

	// Callback
	onComplete func(name string)
}

// NewWelcomeScreen creates a new welcome screen.
func NewWelcomeScreen() *WelcomeScreen {
	ws := &WelcomeScreen{}
	ws.calculatePosition()
	ws.createWidgets()
	return ws
}

// calculatePosition centers the screen.
func (ws *WelcomeScreen) calculatePosition() {
	ws.x = (ScreenWidth - WelcomeWidth) / 2
	ws.y = (ScreenHeight - WelcomeHeight) / 2
}

// createWidgets initializes all welcome screen widgets.
func (ws *WelcomeScreen) createWidgets() {
	contentX := ws.x + WelcomePadX
	contentW := WelcomeWidth - WelcomePadX*2

	// Name input
	inputY := ws.y + 230
	ws.nameInput = NewTextInput(contentX, inputY, contentW, 40, "Enter your name", 20)

	// Start button
	btnW := 160
	btnH := 44
	btnX := ws.x + (WelcomeWidth-btnW)/2
	btnY := ws.y + WelcomeHeight - WelcomePadY - btnH
	ws.startBtn = NewModalButton(btnX, btnY, btnW, btnH, "Start Playing", true, nil)
}

// Show displays the welcome screen.
func (ws *WelcomeScreen) Show(onComplete func(name string)) {
	ws.visible = true
	ws.onComplete = onComplete
	ws.nameInput.Value = ""
	ws.startBtn.OnClick = ws.handleStart
}

// Hide closes the welcome screen.
func (ws *WelcomeScreen) Hide() {
	ws.visible = false
	ws.nameInput.SetFocused(false)
}

// IsVisible returns true if the screen is visible.
func (ws *WelcomeScreen) IsVisible() bool {
	return ws.visible
}

// handleStart handles the start button click.
func (ws *WelcomeScreen) handleStart() {
	name := ws.nameInput.Value
	if name == "" {
		name = "Player"
	}

	if ws.onComplete != nil {
		ws.onComplete(name)
	}
	ws.Hide()
}

// Update handles input for the welcome screen.
func (ws *WelcomeScreen) Update(input *InputHandler) bool {
	if !ws.visible {
		return false
	}

	// Handle enter key to start
	if IsKeyJustPressed(ebiten.KeyEnter) {
		ws.handleStart()
		return true
	}

	// Update widgets
	ws.nameInput.Update(input)
	ws.startBtn.Update(input)

	// Welcome screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (ws *WelcomeScreen) AnyButtonHovered() bool {
	if !ws.visible {
		return false
	}
	return ws.startBtn.IsHovered()
}

// Draw renders the welcome screen.
func (ws *WelcomeScreen) Draw(screen *ebiten.Image, glass *GlassEffect) {
	if !ws.visible {
		return
	}

	// Blur what is behind the modal, then dim it
	if glass != nil && glass.IsEnabled() {
		glass.DrawGlassSimple(screen, 0, 0, screen.Bounds().Dx(), screen.Bounds().Dy(), modalTint, 3.0)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), modalOverlay, false)

	// Modal background
	vector.DrawFilledRect(screen, scaleF(ws.x), scaleF(ws.y), scaleF(WelcomeWidth), scaleF(WelcomeHeight), modalBg, false)

	// Modal border
	vector.StrokeRect(screen, scaleF(ws.x), scaleF(ws.y), scaleF(WelcomeWidth), scaleF(WelcomeHeight), float32(UIScale*2), modalBorder, false)

	// Draw chess piece icon (king)
	ws.drawChessIcon(screen)

	// Draw title
	ws.drawTitle(screen)

	// Draw subtitle
	ws.drawSubtitle(screen)

	// Draw the variant rules
	ws.drawRules(screen)

	// Section label for name
	contentX := ws.x + WelcomePadX
	ws.drawSectionLabel(screen, "Your Name", contentX, ws.nameInput.Y-20)

	// Draw widgets
	ws.nameInput.Draw(screen)
	ws.startBtn.Draw(screen)
}

// drawChessIcon draws a decorative king icon.
func (ws *WelcomeScreen) drawChessIcon(screen *ebiten.Image) {
	// Draw a simple crown-like shape for the king
	centerX := scaleF(ws.x + WelcomeWidth/2)
	y := scaleF(ws.y + 28)

	iconColor := accentColor

	// Simple crown/king icon using circles and rectangles
	vector.DrawFilledCircle(screen, centerX, y+scaleF(8), scaleF(6), iconColor, false)
	vector.DrawFilledRect(screen, centerX-scaleF(8), y+scaleF(10), scaleF(16), scaleF(14), iconColor, false)

	// Cross on top
	vector.DrawFilledRect(screen, centerX-scaleF(1), y-scaleF(2), scaleF(3), scaleF(10), iconColor, false)
	vector.DrawFilledRect(screen, centerX-scaleF(4), y+scaleF(2), scaleF(9), scaleF(3), iconColor, false)
}

// drawTitle draws the main title.
func (ws *WelcomeScreen) drawTitle(screen *ebiten.Image) {
	face := GetFaceWithSize(24 * UIScale)
	if face == nil {
		return
	}

	title := "EXTINCTION"
	w, _ := MeasureText(title, face)
	centerX := scaleD(ws.x) + scaleD(WelcomeWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(ws.y+64))
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

// drawSubtitle draws the subtitle.
func (ws *WelcomeScreen) drawSubtitle(screen *ebiten.Image) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}

	subtitle := "Wipe out one enemy piece type to win."
	w, _ := MeasureText(subtitle, face)
	centerX := scaleD(ws.x) + scaleD(WelcomeWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(ws.y+100))
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, subtitle, face, op)
}

// drawRules draws the rules summary lines.
func (ws *WelcomeScreen) drawRules(screen *ebiten.Image) {
	face := GetFaceWithSize(12 * UIScale)
	if face == nil {
		return
	}

	y := ws.y + 140
	for _, line := range rulesLines {
		w, _ := MeasureText(line, face)
		centerX := scaleD(ws.x) + scaleD(WelcomeWidth)/2 - w/2

		op := &text.DrawOptions{}
		op.GeoM.Translate(centerX, scaleD(y))
		op.ColorScale.ScaleWithColor(textMuted)
		text.Draw(screen, line, face, op)
		y += 22
	}
}

// drawSectionLabel draws a section label.
func (ws *WelcomeScreen) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(textSecondary)
	text.Draw(screen, label, face, op)
}
