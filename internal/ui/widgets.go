package ui

import (
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget colors (button and text colors live in panel.go)
var (
	widgetBg          = color.RGBA{48, 52, 58, 255}
	widgetBorder      = color.RGBA{68, 72, 78, 255}
	widgetFocusBorder = color.RGBA{76, 175, 120, 255}
	widgetHoverBg     = color.RGBA{65, 70, 78, 255}
	checkboxCheck     = color.RGBA{76, 175, 120, 255}
	inputTextColor    = color.RGBA{240, 240, 245, 255}
	inputPlaceholder  = color.RGBA{120, 125, 135, 255}
)

// TextInput is an editable text field widget.
type TextInput struct {
	X, Y, W, H  int
	Value       string
	Placeholder string
	MaxLength   int
	focused     bool
	hovered     bool
	cursorBlink int
}

// NewTextInput creates a new text input widget.
func NewTextInput(x, y, w, h int, placeholder string, maxLen int) *TextInput {
	return &TextInput{
		X: x, Y: y, W: w, H: h,
		Placeholder: placeholder,
		MaxLength:   maxLen,
	}
}

// Update handles text input. Returns true while the input has focus.
func (ti *TextInput) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	ti.hovered = mx >= ti.X && mx < ti.X+ti.W && my >= ti.Y && my < ti.Y+ti.H

	// Click to focus
	if input.IsLeftJustPressed() {
		ti.focused = ti.hovered
	}

	if !ti.focused {
		return false
	}

	ti.cursorBlink++
	if ti.cursorBlink > 60 {
		ti.cursorBlink = 0
	}

	chars := ebiten.AppendInputChars(nil)
	for _, c := range chars {
		if ti.MaxLength == 0 || utf8.RuneCountInString(ti.Value) < ti.MaxLength {
			ti.Value += string(c)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(ti.Value) > 0 {
			_, size := utf8.DecodeLastRuneInString(ti.Value)
			ti.Value = ti.Value[:len(ti.Value)-size]
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ti.focused = false
	}

	return true
}

// Draw renders the text input.
func (ti *TextInput) Draw(screen *ebiten.Image) {
	bgColor := widgetBg
	if ti.hovered && !ti.focused {
		bgColor = color.RGBA{52, 56, 62, 255}
	}
	vector.DrawFilledRect(screen, scaleF(ti.X), scaleF(ti.Y), scaleF(ti.W), scaleF(ti.H), bgColor, false)

	borderColor := widgetBorder
	if ti.focused {
		borderColor = widgetFocusBorder
	} else if ti.hovered {
		borderColor = accentColor
	}
	vector.StrokeRect(screen, scaleF(ti.X), scaleF(ti.Y), scaleF(ti.W), scaleF(ti.H), float32(UIScale*2), borderColor, false)

	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}

	textX := scaleD(ti.X + 10)
	textY := scaleD(ti.Y) + scaleD(ti.H)/2

	if ti.Value != "" {
		op := &text.DrawOptions{}
		w, h := MeasureText(ti.Value, face)
		op.GeoM.Translate(textX, textY-h/2)
		op.ColorScale.ScaleWithColor(inputTextColor)
		text.Draw(screen, ti.Value, face, op)

		if ti.focused && ti.cursorBlink < 30 {
			cursorX := float32(textX+w) + float32(UIScale*2)
			vector.DrawFilledRect(screen, cursorX, scaleF(ti.Y+8), float32(UIScale*2), scaleF(ti.H-16), inputTextColor, false)
		}
	} else if ti.Placeholder != "" {
		op := &text.DrawOptions{}
		_, h := MeasureText(ti.Placeholder, face)
		op.GeoM.Translate(textX, textY-h/2)
		op.ColorScale.ScaleWithColor(inputPlaceholder)
		text.Draw(screen, ti.Placeholder, face, op)

		if ti.focused && ti.cursorBlink < 30 {
			vector.DrawFilledRect(screen, float32(textX), scaleF(ti.Y+8), float32(UIScale*2), scaleF(ti.H-16), inputTextColor, false)
		}
	}
}

// IsFocused returns true if the input is focused.
func (ti *TextInput) IsFocused() bool {
	return ti.focused
}

// SetFocused sets the focus state.
func (ti *TextInput) SetFocused(focused bool) {
	ti.focused = focused
}

// Checkbox is a toggleable checkbox widget.
type Checkbox struct {
	X, Y    int
	Label   string
	Checked bool
	hovered bool
}

// NewCheckbox creates a new checkbox.
func NewCheckbox(x, y int, label string, checked bool) *Checkbox {
	return &Checkbox{
		X:       x,
		Y:       y,
		Label:   label,
		Checked: checked,
	}
}

// Update handles checkbox input. Returns true when toggled.
func (cb *Checkbox) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	cb.hovered = mx >= cb.X && mx < cb.X+200 && my >= cb.Y && my < cb.Y+24

	if input.IsLeftJustPressed() && cb.hovered {
		cb.Checked = !cb.Checked
		return true
	}
	return false
}

// Draw renders the checkbox.
func (cb *Checkbox) Draw(screen *ebiten.Image) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}

	su := float32(UIScale)
	boxX := scaleF(cb.X)
	boxY := scaleF(cb.Y)
	boxSize := 20 * su

	bgColor := widgetBg
	if cb.hovered {
		bgColor = widgetHoverBg
	}
	vector.DrawFilledRect(screen, boxX, boxY, boxSize, boxSize, bgColor, false)

	borderC := widgetBorder
	if cb.hovered {
		borderC = accentColor
	} else if cb.Checked {
		borderC = checkboxCheck
	}
	vector.StrokeRect(screen, boxX, boxY, boxSize, boxSize, 2*su, borderC, false)

	if cb.Checked {
		vector.StrokeLine(screen, boxX+4*su, boxY+10*su, boxX+8*su, boxY+14*su, 2*su, checkboxCheck, false)
		vector.StrokeLine(screen, boxX+8*su, boxY+14*su, boxX+16*su, boxY+6*su, 2*su, checkboxCheck, false)
	}

	op := &text.DrawOptions{}
	_, h := MeasureText(cb.Label, face)
	op.GeoM.Translate(scaleD(cb.X+30), scaleD(cb.Y+10)-h/2)
	textColor := textSecondary
	if cb.Checked {
		textColor = textPrimary
	} else if cb.hovered {
		textColor = inputTextColor
	}
	op.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, cb.Label, face, op)
}

// ModalButton is a button for modal dialogs.
type ModalButton struct {
	X, Y, W, H int
	Label      string
	Primary    bool
	OnClick    func()
	hovered    bool
	pressed    bool
}

// NewModalButton creates a new modal button.
func NewModalButton(x, y, w, h int, label string, primary bool, onClick func()) *ModalButton {
	return &ModalButton{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Primary: primary,
		OnClick: onClick,
	}
}

// IsHovered returns true if the button is hovered.
func (mb *ModalButton) IsHovered() bool {
	return mb.hovered
}

// Update handles modal button input. Returns true when clicked.
func (mb *ModalButton) Update(input *InputHandler) bool {
	mx, my := input.MousePosition()
	mb.hovered = mx >= mb.X && mx < mb.X+mb.W && my >= mb.Y && my < mb.Y+mb.H
	mb.pressed = input.IsLeftPressed() && mb.hovered

	if input.IsLeftJustPressed() && mb.hovered && mb.OnClick != nil {
		mb.OnClick()
		return true
	}
	return false
}

// Draw renders the modal button.
func (mb *ModalButton) Draw(screen *ebiten.Image) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}

	var bgColor color.RGBA
	var borderC color.RGBA

	if mb.Primary {
		bgColor = accentColor
		borderC = accentPressed
		if mb.pressed {
			bgColor = accentPressed
		} else if mb.hovered {
			bgColor = accentHover
			borderC = color.RGBA{116, 215, 160, 255}
		}
	} else {
		bgColor = buttonBg
		borderC = widgetBorder
		if mb.pressed {
			bgColor = buttonPressedBg
		} else if mb.hovered {
			bgColor = buttonHoverBg
			borderC = accentColor
		}
	}

	vector.DrawFilledRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), bgColor, false)
	vector.StrokeRect(screen, scaleF(mb.X), scaleF(mb.Y), scaleF(mb.W), scaleF(mb.H), float32(UIScale), borderC, false)

	w, h := MeasureText(mb.Label, face)
	centerX := scaleD(mb.X) + scaleD(mb.W)/2 - w/2
	centerY := scaleD(mb.Y) + scaleD(mb.H)/2 - h/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(centerX, centerY)
	op.ColorScale.ScaleWithColor(textPrimary)
	text.Draw(screen, mb.Label, face, op)
}

// DrawDivider draws a horizontal divider line.
func DrawDivider(screen *ebiten.Image, x, y, w int) {
	vector.DrawFilledRect(screen, scaleF(x), scaleF(y), scaleF(w), float32(UIScale), dividerColor, false)
}

// DrawSectionHeader draws a muted section label.
func DrawSectionHeader(screen *ebiten.Image, label string, x, y int) {
	face := GetFaceWithSize(defaultFontSize * UIScale)
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	_, h := MeasureText(label, face)
	op.GeoM.Translate(scaleD(x), scaleD(y)-h/2)
	op.ColorScale.ScaleWithColor(textMuted)
	text.Draw(screen, label, face, op)
}
