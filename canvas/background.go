package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBackgroundGrid fills the screen with the void color and draws a grid over
// the world node's current frame, plus the world origin cross.
func DrawBackgroundGrid(cam *Camera, screen *ebiten.Image, gridSize float64, gridColor, voidColor, originCross color.Color) {
	screen.Fill(voidColor)

	node := cam.World()
	scale := node.Scale()
	if scale <= 0 || gridSize <= 0 {
		return
	}

	// frame in world-node coordinates
	frame := node.Frame()
	pos := node.Position()
	left := (frame.MinX() - pos.X) / scale
	right := (frame.MaxX() - pos.X) / scale
	bottom := (frame.MinY() - pos.Y) / scale
	top := (frame.MaxY() - pos.Y) / scale

	startX := math.Ceil(left/gridSize) * gridSize
	for wx := startX; wx <= right; wx += gridSize {
		a := cam.WorldToScreen(Point{wx, bottom})
		b := cam.WorldToScreen(Point{wx, top})
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridColor, false)
	}

	startY := math.Ceil(bottom/gridSize) * gridSize
	for wy := startY; wy <= top; wy += gridSize {
		a := cam.WorldToScreen(Point{left, wy})
		b := cam.WorldToScreen(Point{right, wy})
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, gridColor, false)
	}

	o := cam.WorldToScreen(Point{})
	vector.StrokeLine(screen, float32(o.X-15), float32(o.Y), float32(o.X+15), float32(o.Y), 2, originCross, false)
	vector.StrokeLine(screen, float32(o.X), float32(o.Y-15), float32(o.X), float32(o.Y+15), 2, originCross, false)
}
