package input

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scenario-camera/canvas"
)

// mouseTouchID stands in for the left mouse button so desktop drags go
// through the same recognizer as touches.
const mouseTouchID = -1

// Poller feeds ebiten's touch, mouse and keyboard state into a Recognizer
// once per tick.
type Poller struct {
	rec       *Recognizer
	zoomSpeed float64
	keyStep   float64

	touchIDs      []ebiten.TouchID
	touches       []Touch
	mouseCaptured bool
}

func NewPoller(rec *Recognizer, zoomSpeed, keyStep float64) *Poller {
	return &Poller{rec: rec, zoomSpeed: zoomSpeed, keyStep: keyStep}
}

// Update polls input. overUI reports whether a screen point belongs to the
// HUD; presses that start there are left to the HUD.
func (p *Poller) Update(overUI func(x, y int) bool) {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	p.touches = p.touches[:0]
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		if overUI != nil && overUI(x, y) && p.rec.mode == idle {
			continue
		}
		p.touches = append(p.touches, Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}

	mx, my := ebiten.CursorPosition()
	if len(p.touches) == 0 {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.mouseCaptured = overUI == nil || !overUI(mx, my)
		}
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.mouseCaptured = false
		}
		if p.mouseCaptured {
			p.touches = append(p.touches, Touch{ID: mouseTouchID, X: float64(mx), Y: float64(my)})
		}
	}

	p.rec.Update(p.touches)

	if factor := p.zoomFactor(); factor != 1 {
		p.rec.Zoom(canvas.Point{X: float64(mx), Y: float64(my)}, factor)
	}
}

func (p *Poller) zoomFactor() float64 {
	_, dy := ebiten.Wheel()
	zoomIn := ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd)
	zoomOut := ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract)
	return zoomStep(dy, zoomIn, zoomOut, p.keyStep, p.zoomSpeed)
}

// zoomStep turns wheel notches plus held +/- keys into a scale factor. Each
// notch changes the scale by speed; a held key counts as keyStep notches.
func zoomStep(notches float64, zoomIn, zoomOut bool, keyStep, speed float64) float64 {
	if zoomIn {
		notches += keyStep
	}
	if zoomOut {
		notches -= keyStep
	}
	if notches == 0 {
		return 1
	}
	return math.Pow(1+speed, notches)
}
