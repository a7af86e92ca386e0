package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	ButtonWidth  = 64
	ButtonHeight = 28
	ButtonMargin = 10
)

var (
	colorButtonOn  = color.RGBA{50, 140, 80, 220}
	colorButtonOff = color.RGBA{60, 60, 70, 200}
)

type Button struct {
	Label   string
	X, Y    float32
	W, H    float32
	Active  func() bool
	OnClick func()
}

func (b *Button) IsMouseOver(mx, my int) bool {
	return float32(mx) >= b.X && float32(mx) <= b.X+b.W &&
		float32(my) >= b.Y && float32(my) <= b.Y+b.H
}

// Draw renders the button, tinted by its Active state.
func (b *Button) Draw(screen *ebiten.Image, getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	buttonColor := colorButtonOff
	if b.Active != nil && b.Active() {
		buttonColor = colorButtonOn
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, buttonColor, false)
	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	drawText(screen, face, b.Label, int(b.X)+8, int(b.Y)+8, color.White)
}
