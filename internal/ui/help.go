package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Help screen dimensions
const (
	HelpWidth  = 440
	HelpHeight = 460
)

type shortcut struct {
	Key  string
	Desc string
}

var shortcuts = []shortcut{
	{"N", "New game"},
	{"E", "Export the board as SVG"},
	{"F", "Flip the board"},
	{"M", "Toggle sound"},
	{"T", "Toggle move target markers"},
	{"H", "Show or hide this help"},
	{"Esc", "Close"},
}

// HelpScreen is the in-game help overlay.
type HelpScreen struct {
	visible bool

	// Position (centered on screen)
	x, y int

	closeBtn *ModalButton
}

// NewHelpScreen creates a new help screen.
func NewHelpScreen() *HelpScreen {
	hs := &HelpScreen{}
	hs.x = (ScreenWidth - HelpWidth) / 2
	hs.y = (ScreenHeight - HelpHeight) / 2

	btnW := 120
	btnH := 40
	btnX := hs.x + (HelpWidth-btnW)/2
	btnY := hs.y + HelpHeight - 24 - btnH
	hs.closeBtn = NewModalButton(btnX, btnY, btnW, btnH, "Close", false, func() { hs.Hide() })
	return hs
}

// Show displays the help screen.
func (hs *HelpScreen) Show() {
	hs.visible = true
}

// Hide closes the help screen.
func (hs *HelpScreen) Hide() {
	hs.visible = false
}

// IsVisible returns true if the screen is visible.
func (hs *HelpScreen) IsVisible() bool {
	return hs.visible
}

// Update handles input for the help screen.
func (hs *HelpScreen) Update(input *InputHandler) bool {
	if !hs.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) || IsKeyJustPressed(ebiten.KeyH) {
		hs.Hide()
		return true
	}

	hs.closeBtn.Update(input)

	// Help screen consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the screen is hovered.
func (hs *HelpScreen) AnyButtonHovered() bool {
	if !hs.visible {
		return false
	}
	return hs.closeBtn.IsHovered()
}

// Draw renders the help screen.
func (hs *HelpScreen) Draw(screen *ebiten.Image, glass *GlassEffect) {
	if !hs.visible {
		return
	}

	// Blur what is behind the modal, then dim it
	if glass != nil && glass.IsEnabled() {
		glass.DrawGlassSimple(screen, 0, 0, screen.Bounds().Dx(), screen.Bounds().Dy(), modalTint, 3.0)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()), modalOverlay, false)

	// Modal background and border
	vector.DrawFilledRect(screen, scaleF(hs.x), scaleF(hs.y), scaleF(HelpWidth), scaleF(HelpHeight), modalBg, false)
	vector.StrokeRect(screen, scaleF(hs.x), scaleF(hs.y), scaleF(HelpWidth), scaleF(HelpHeight), float32(UIScale*2), modalBorder, false)

	// Title
	hs.drawTitle(screen)

	contentX := hs.x + 32

	// Rules section
	hs.drawLabel(screen, "Rules", contentX, hs.y+76)
	y := hs.y + 100
	for _, line := range rulesLines {
		hs.drawLine(screen, line, contentX, y, textSecondary)
		y += 22
	}
	hs.drawLine(screen, "Click or drag a piece to move it.", contentX, y, textSecondary)

	// Shortcuts section
	hs.drawLabel(screen, "Keys", contentX, hs.y+196)
	y = hs.y + 220
	for _, sc := range shortcuts {
		hs.drawLine(screen, sc.Key, contentX, y, accentColor)
		hs.drawLine(screen, sc.Desc, contentX+60, y, textSecondary)
		y += 22
	}

	hs.closeBtn.Draw(screen)
}

func (hs *HelpScreen) drawTitle(screen *ebiten.Image) {
	face := GetFaceWithSize(20 * UIScale)
	if face == nil {
		return
	}

	title := "How to Play"
	w, _ := MeasureText(title, face)
	centerX := scaleD(hs.x) + scaleD(HelpWidth)/2 - w/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, scaleD(hs.y+28))
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, title, face, op)
}

func (hs *HelpScreen) drawLabel(screen *ebiten.Image, label string, x, y int) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}

func (hs *HelpScreen) drawLine(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetFaceWithSize(12 * UIScale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
