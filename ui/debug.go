package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"scenario-camera/canvas"
)

// DebugPanel shows the camera state in the bottom-left corner.
type DebugPanel struct {
	Camera *canvas.Camera
	Error  string
}

func (d *DebugPanel) SetError(msg string) {
	d.Error = msg
}

func (d *DebugPanel) Clear() {
	d.Error = ""
}

// Lines returns the panel text, one entry per line.
func (d *DebugPanel) Lines() []string {
	var lines []string
	if c := d.Camera; c != nil {
		p := c.Position()
		lo, hi := c.ScaleRange()
		minX, maxX, minY, maxY := c.ClampBounds()
		lines = append(lines,
			fmt.Sprintf("pos (%.0f, %.0f)  scale %.2f [%.2f, %.2f]", p.X, p.Y, c.Scale(), lo, hi),
			fmt.Sprintf("x [%.0f, %.0f]  y [%.0f, %.0f]", minX, maxX, minY, maxY),
			fmt.Sprintf("cam %s  zoom %s  clamp %s  pan %s",
				onOff(c.Enabled()), onOff(c.ZoomEnabled()), onOff(c.ClampEnabled()), onOff(c.PanEnabled())),
		)
	}
	if d.Error != "" {
		lines = append(lines, d.Error)
	}
	return lines
}

func (d *DebugPanel) Draw(screen *ebiten.Image, getScreenSize func() (int, int), getFace func() font.Face, drawText func(screen *ebiten.Image, face font.Face, s string, x, y int, clr color.Color)) {
	if d == nil {
		return
	}
	lines := d.Lines()
	if len(lines) == 0 {
		return
	}
	_, h := getScreenSize()
	pw, ph := 360, 18*len(lines)+16
	x, y := 10, h-ph-10
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(pw), float32(ph), color.RGBA{40, 40, 40, 220}, false)

	if getFace == nil || drawText == nil {
		return
	}
	face := getFace()
	if face == nil {
		return
	}
	clr := color.Color(color.RGBA{220, 220, 220, 255})
	if d.Error != "" {
		clr = color.RGBA{255, 200, 50, 255}
	}
	drawText(screen, face, strings.Join(lines, "\n"), x+8, y+8, clr)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
