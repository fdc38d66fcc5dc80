package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/extinction/internal/board"
)

// Panel dimensions
const (
	PanelPadding    = 20
	SectionSpacing  = 28
	ButtonHeight    = 40
	CollapsedWidth  = 20
	CollapseButtonW = 16
	CollapseButtonH = 48
	SectionLabelH   = 20
	RosterRowH      = 19
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}    // Dark background
	sectionBg       = color.RGBA{48, 52, 58, 255}    // Slightly lighter section
	buttonBg        = color.RGBA{50, 54, 60, 255}    // Button background (darker)
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}    // Button hover (brighter)
	buttonPressedBg = color.RGBA{40, 44, 50, 255}    // Button pressed (darker)
	buttonBorder    = color.RGBA{70, 75, 82, 255}    // Subtle button border
	accentColor     = color.RGBA{76, 175, 120, 255}  // Green accent
	accentHover     = color.RGBA{96, 195, 140, 255}  // Lighter green on hover
	accentPressed   = color.RGBA{56, 155, 100, 255}  // Darker green on press
	textPrimary     = color.RGBA{240, 240, 245, 255} // Primary text
	textSecondary   = color.RGBA{160, 165, 175, 255} // Secondary text
	textMuted       = color.RGBA{120, 125, 135, 255} // Muted text
	dividerColor    = color.RGBA{60, 65, 72, 255}    // Divider line
	moveRowAlt      = color.RGBA{44, 48, 54, 255}    // Alternating row
	statusGameOver  = color.RGBA{255, 200, 80, 255}  // Yellow for game over
	lastOneColor    = color.RGBA{255, 200, 80, 255}  // A type down to one survivor
	extinctColor    = color.RGBA{225, 95, 85, 255}   // A type wiped out
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

// Panel represents the side panel with controls, the piece roster and the
// move history.
type Panel struct {
	game      *Game
	collapsed bool

	// UI elements
	collapseBtn  *Button
	newGameBtn   *Button
	exportBtn    *Button
	helpBtn      *Button
	soundCheck   *Checkbox
	targetsCheck *Checkbox

	// Layout anchors computed in createButtons
	rosterY  int
	historyY int

	// Move history scroll
	scrollY    int
	maxScrollY int
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{
		game:      g,
		collapsed: false,
	}

	p.createButtons()
	return p
}

// createButtons initializes all panel buttons.
func (p *Panel) createButtons() {
	// Collapse/expand button - integrated tab at panel edge
	tabY := (ScreenHeight - CollapseButtonH) / 2 // Vertically centered
	if p.collapsed {
		p.collapseBtn = &Button{
			X: BoardSize + 2,
			Y: tabY,
			W: CollapseButtonW, H: CollapseButtonH,
			OnClick: func() { p.toggleCollapse() },
		}
	} else {
		p.collapseBtn = &Button{
			X: BoardSize, // Flush with panel left edge
			Y: tabY,
			W: CollapseButtonW, H: CollapseButtonH,
			OnClick: func() { p.toggleCollapse() },
		}
	}

	// Content area - full width, collapse button doesn't take space
	contentX := BoardSize + PanelPadding
	contentW := PanelWidth - PanelPadding*2

	// New Game button (full width, prominent)
	newGameY := PanelPadding + 8
	p.newGameBtn = &Button{
		X: contentX, Y: newGameY,
		W: contentW, H: ButtonHeight,
		Label:   "New Game",
		OnClick: p.game.NewGameAction,
	}

	// Export and Help side by side below New Game
	rowY := newGameY + ButtonHeight + 8
	halfW := (contentW - 8) / 2
	p.exportBtn = &Button{
		X: contentX, Y: rowY,
		W: halfW, H: ButtonHeight - 6,
		Label:   "Export SVG",
		OnClick: p.game.ExportAction,
	}
	p.helpBtn = &Button{
		X: contentX + halfW + 8, Y: rowY,
		W: halfW, H: ButtonHeight - 6,
		Label:   "Help",
		OnClick: p.game.ShowHelp,
	}

	// Checkboxes keep their state across layout rebuilds
	checkY := rowY + ButtonHeight - 6 + 12
	sound := p.game.SoundEnabled()
	if p.soundCheck != nil {
		sound = p.soundCheck.Checked
	}
	p.soundCheck = NewCheckbox(contentX, checkY, "Sound", sound)

	targets := p.game.ShowTargets()
	if p.targetsCheck != nil {
		targets = p.targetsCheck.Checked
	}
	p.targetsCheck = NewCheckbox(contentX+halfW+8, checkY, "Targets", targets)

	// Roster section: label + header + one row per piece type
	p.rosterY = checkY + 24 + SectionSpacing - 12
	rosterEnd := p.rosterY + SectionLabelH + 7*RosterRowH

	// Move history below the roster
	p.historyY = rosterEnd + SectionSpacing - 8
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	// Always check collapse button
	p.collapseBtn.hovered = p.isInside(mx, my, p.collapseBtn)
	p.collapseBtn.pressed = input.IsLeftPressed() && p.collapseBtn.hovered

	if input.IsLeftJustPressed() && p.collapseBtn.hovered {
		p.collapseBtn.OnClick() // toggleCollapse handles button recreation and window resize
		return true
	}

	if p.collapsed {
		return false
	}

	// Handle scroll wheel for move history
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		// Check if mouse is in move history area
		if mx >= BoardSize && my >= p.historyY && my < ScreenHeight-70 {
			p.scrollY -= int(wheelY * 30) // 30px per scroll tick
			if p.scrollY < 0 {
				p.scrollY = 0
			}
			if p.scrollY > p.maxScrollY {
				p.scrollY = p.maxScrollY
			}
		}
	}

	// Check buttons for hover
	p.newGameBtn.hovered = p.isInside(mx, my, p.newGameBtn)
	p.exportBtn.hovered = p.isInside(mx, my, p.exportBtn)
	p.helpBtn.hovered = p.isInside(mx, my, p.helpBtn)

	// Track pressed state (mouse down on button)
	if input.IsLeftPressed() {
		p.newGameBtn.pressed = p.newGameBtn.hovered
		p.exportBtn.pressed = p.exportBtn.hovered
		p.helpBtn.pressed = p.helpBtn.hovered
	} else {
		p.newGameBtn.pressed = false
		p.exportBtn.pressed = false
		p.helpBtn.pressed = false
	}

	if p.soundCheck.Update(input) {
		p.game.SetSoundEnabled(p.soundCheck.Checked)
		return true
	}
	if p.targetsCheck.Update(input) {
		p.game.SetShowTargets(p.targetsCheck.Checked)
		return true
	}

	// Handle clicks
	if input.IsLeftJustPressed() {
		if p.newGameBtn.hovered {
			p.newGameBtn.OnClick()
			return true
		}
		if p.exportBtn.hovered {
			p.exportBtn.OnClick()
			return true
		}
		if p.helpBtn.hovered {
			p.helpBtn.OnClick()
			return true
		}
	}

	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.collapseBtn.hovered {
		return true
	}
	if p.collapsed {
		return false
	}
	return p.newGameBtn.hovered || p.exportBtn.hovered || p.helpBtn.hovered
}

func (p *Panel) isInside(mx, my int, btn *Button) bool {
	return mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p.collapsed {
		// Draw collapsed state - just a thin bar with expand button
		vector.DrawFilledRect(screen, scaleF(BoardSize), 0, scaleF(CollapsedWidth), scaleF(ScreenHeight), panelBg, false)
		p.drawCollapseButton(screen, true)
		return
	}

	// Draw panel background
	vector.DrawFilledRect(screen, scaleF(BoardSize), 0, scaleF(PanelWidth), scaleF(ScreenHeight), panelBg, false)

	// Draw collapse button
	p.drawCollapseButton(screen, false)

	// Draw New Game button
	p.drawPrimaryButton(screen, p.newGameBtn)

	// Draw Export and Help buttons
	p.drawSecondaryButton(screen, p.exportBtn)
	p.drawSecondaryButton(screen, p.helpBtn)

	p.soundCheck.Draw(screen)
	p.targetsCheck.Draw(screen)

	// Draw roster section
	p.drawSectionLabel(screen, "Forces", BoardSize+PanelPadding, p.rosterY)
	p.drawRoster(screen, p.rosterY+SectionLabelH)

	// Draw move history section
	p.drawSectionLabel(screen, "Moves", BoardSize+PanelPadding, p.historyY)
	p.drawMoveHistory(screen, p.historyY+SectionLabelH+4)

	// Draw status bar at bottom
	p.drawStatusBar(screen)
}

func (p *Panel) drawCollapseButton(screen *ebiten.Image, expand bool) {
	btn := p.collapseBtn

	// Use panel background color to blend in as integrated tab
	bgColor := panelBg
	if btn.hovered {
		bgColor = sectionBg // Subtle highlight on hover
	}

	// Draw as integrated tab (no border, blends with panel)
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	// Draw arrow - muted by default, bright on hover
	arrow := "‹"
	if expand {
		arrow = "›"
	}
	textC := textMuted
	if btn.hovered {
		textC = textPrimary
	}
	p.drawTextCentered(screen, arrow, btn.X+btn.W/2, btn.Y+btn.H/2, textC)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}

	// Draw button background
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	// Draw border for depth
	borderC := color.RGBA{56, 155, 100, 255}
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255} // Lighter border on hover
	}
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), float32(UIScale), borderC, false)

	// Draw label
	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}

	// Draw button background
	vector.DrawFilledRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), bgColor, false)

	// Draw border
	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor // Green border on hover
	}
	vector.StrokeRect(screen, scaleF(btn.X), scaleF(btn.Y), scaleF(btn.W), scaleF(btn.H), float32(UIScale), borderC, false)

	p.drawTextCentered(screen, btn.Label, btn.X+btn.W/2, btn.Y+btn.H/2, textSecondary)
}

func (p *Panel) drawSectionLabel(screen *ebiten.Image, label string, x, y int) {
	p.drawText(screen, label, x, y, textMuted)
}

// drawRoster lists surviving piece counts per type for both sides. A count of
// one marks the last survivor of its type; zero means the type is extinct.
func (p *Panel) drawRoster(screen *ebiten.Image, startY int) {
	pos := p.game.Position()
	x := BoardSize + PanelPadding
	whiteX := x + 130
	blackX := x + 185

	p.drawText(screen, "White", whiteX, startY, textMuted)
	p.drawText(screen, "Black", blackX, startY, textMuted)

	y := startY + RosterRowH
	for pt := board.Pawn; pt <= board.King; pt++ {
		p.drawText(screen, pt.String(), x, y, textSecondary)
		p.drawCount(screen, pos.Count(board.White, pt), whiteX+8, y)
		p.drawCount(screen, pos.Count(board.Black, pt), blackX+8, y)
		y += RosterRowH
	}
}

func (p *Panel) drawCount(screen *ebiten.Image, n, x, y int) {
	c := textPrimary
	switch n {
	case 0:
		c = extinctColor
	case 1:
		c = lastOneColor
	}
	p.drawText(screen, fmt.Sprintf("%d", n), x, y, c)
}

func (p *Panel) drawMoveHistory(screen *ebiten.Image, startY int) {
	moves := p.game.MoveHistory()
	if len(moves) == 0 {
		p.drawText(screen, "No moves yet", BoardSize+PanelPadding, startY+5, textMuted)
		return
	}

	x := BoardSize + PanelPadding
	rowHeight := 22
	maxY := ScreenHeight - 70 // Leave room for status bar
	visibleHeight := maxY - startY

	// Calculate total content height and max scroll
	totalRows := (len(moves) + 1) / 2
	contentHeight := totalRows * rowHeight
	p.maxScrollY = contentHeight - visibleHeight
	if p.maxScrollY < 0 {
		p.maxScrollY = 0
	}

	// Clamp scroll position
	if p.scrollY > p.maxScrollY {
		p.scrollY = p.maxScrollY
	}

	// Calculate starting row based on scroll
	startRow := p.scrollY / rowHeight
	startMoveIdx := startRow * 2

	// Y position adjusted for partial scroll
	y := startY - (p.scrollY % rowHeight)

	for i := startMoveIdx; i < len(moves); i += 2 {
		// Skip if above visible area
		if y < startY-rowHeight {
			y += rowHeight
			continue
		}
		// Stop if below visible area
		if y > maxY {
			break
		}

		// Alternating row background (only if visible)
		if y >= startY-rowHeight && (i/2)%2 == 1 {
			bgY := y - 2
			if bgY < startY {
				bgY = startY
			}
			vector.DrawFilledRect(screen, scaleF(BoardSize+PanelPadding-4), scaleF(bgY),
				scaleF(PanelWidth-PanelPadding*2+8), scaleF(rowHeight), moveRowAlt, false)
		}

		// Only draw text if within visible bounds
		if y >= startY {
			moveNum := (i / 2) + 1
			numStr := fmt.Sprintf("%d.", moveNum)
			p.drawText(screen, numStr, x, y, textMuted)
			p.drawText(screen, moves[i], x+30, y, textPrimary)
			if i+1 < len(moves) {
				p.drawText(screen, moves[i+1], x+100, y, textPrimary)
			}
		}

		y += rowHeight
	}

	// Show scroll indicator if there's more content
	if p.maxScrollY > 0 {
		// Draw a small scroll indicator on the right
		su := float32(UIScale)
		scrollPct := float32(p.scrollY) / float32(p.maxScrollY)
		indicatorH := float32(visibleHeight) * float32(visibleHeight) / float32(contentHeight)
		if indicatorH < 20 {
			indicatorH = 20
		}
		indicatorY := float32(startY) + scrollPct*(float32(visibleHeight)-indicatorH)
		indicatorX := float32(BoardSize + PanelWidth - 8)
		vector.DrawFilledRect(screen, indicatorX*su, indicatorY*su, 4*su, indicatorH*su, textMuted, false)
	}
}

func (p *Panel) drawStatusBar(screen *ebiten.Image) {
	statusY := ScreenHeight - 70
	x := BoardSize + PanelPadding

	// Draw divider
	vector.DrawFilledRect(screen, scaleF(BoardSize+PanelPadding), scaleF(statusY-10),
		scaleF(PanelWidth-PanelPadding*2), float32(UIScale), dividerColor, false)

	// Draw player name and move count
	username := p.game.Username()
	if len(username) > 12 {
		username = username[:12] + "..."
	}
	p.drawText(screen, username, x, statusY, textPrimary)

	moveCount := fmt.Sprintf("%d moves", len(p.game.MoveHistory()))
	p.drawText(screen, moveCount, x+130, statusY, textSecondary)

	// Game status
	var statusText string
	var statusColor color.RGBA

	if p.game.GameOver() {
		statusText = p.game.GameResult()
		statusColor = statusGameOver
	} else {
		if p.game.Turn() == board.White {
			statusText = "White to move"
		} else {
			statusText = "Black to move"
		}
		statusColor = textPrimary
	}

	p.drawText(screen, statusText, x, statusY+22, statusColor)
}

// Text drawing helpers
func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(scaleD(x), scaleD(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	x := scaleD(centerX) - w/2
	y := scaleD(centerY) - h/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// Collapsed returns whether the panel is collapsed.
func (p *Panel) Collapsed() bool {
	return p.collapsed
}

// toggleCollapse toggles the panel collapsed state and resizes the window.
func (p *Panel) toggleCollapse() {
	p.collapsed = !p.collapsed
	p.createButtons()

	// Resize window to match new layout
	if p.collapsed {
		ebiten.SetWindowSize(BoardSize+CollapsedWidth, ScreenHeight)
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	}
}
