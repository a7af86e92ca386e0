package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// Toggle is a named on/off switch shown as a HUD button.
type Toggle struct {
	Label string
	Get   func() bool
	Set   func(bool)
}

type UISystem struct {
	buttons       []*Button
	getFontFace   func() font.Face
	getScreenSize func() (int, int)
	drawText      func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)
	Debug         *DebugPanel
}

func NewUISystem(getFontFace func() font.Face, getScreenSize func() (int, int), drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color), toggles ...Toggle) *UISystem {
	ui := &UISystem{
		getFontFace:   getFontFace,
		getScreenSize: getScreenSize,
		drawText:      drawText,
		Debug:         &DebugPanel{},
	}
	for _, t := range toggles {
		t := t
		ui.buttons = append(ui.buttons, &Button{
			Label:   t.Label,
			W:       ButtonWidth,
			H:       ButtonHeight,
			Active:  t.Get,
			OnClick: func() { t.Set(!t.Get()) },
		})
	}
	ui.updateButtonPositions()
	return ui
}

// Buttons stack right to left along the top edge.
func (ui *UISystem) updateButtonPositions() {
	w, _ := ui.getScreenSize()
	x := float32(w) - ButtonMargin
	for _, b := range ui.buttons {
		x -= b.W
		b.X = x
		b.Y = ButtonMargin
		x -= ButtonMargin
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			return true
		}
	}
	return false
}

// Click activates the button under (mx, my), if any.
func (ui *UISystem) Click(mx, my int) bool {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		if b.IsMouseOver(mx, my) {
			if b.OnClick != nil {
				b.OnClick()
			}
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ui.Click(mx, my)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		ui.Click(x, y)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	ui.updateButtonPositions()
	for _, b := range ui.buttons {
		b.Draw(screen, ui.getFontFace, ui.drawText)
	}
	if ui.Debug != nil {
		ui.Debug.Draw(screen, ui.getScreenSize, ui.getFontFace, ui.drawText)
	}
}
