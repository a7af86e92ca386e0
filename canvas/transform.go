package canvas

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SceneMatrix maps scene coordinates (y-up) to screen pixels (y-down), with
// the camera position at the center of the viewport.
func (c *Camera) SceneMatrix() mgl64.Mat3 {
	center := mgl64.Translate2D(c.viewport.W/2, c.viewport.H/2)
	flip := mgl64.Scale2D(1, -1)
	follow := mgl64.Translate2D(-c.position.X, -c.position.Y)
	return center.Mul3(flip).Mul3(follow)
}

// ViewMatrix maps world-node coordinates to screen pixels. It includes the
// node's own placement and scale.
func (c *Camera) ViewMatrix() mgl64.Mat3 {
	return c.SceneMatrix().Mul3(NodeMatrix(c.world.Position(), c.world.Scale()))
}

// NodeMatrix is the local-to-parent transform of a node placed at pos with a
// uniform scale.
func NodeMatrix(pos Point, scale float64) mgl64.Mat3 {
	return mgl64.Translate2D(pos.X, pos.Y).Mul3(mgl64.Scale2D(scale, scale))
}

func (c *Camera) SceneToScreen(p Point) Point {
	return Apply(c.SceneMatrix(), p)
}

func (c *Camera) ScreenToScene(p Point) Point {
	return Apply(c.SceneMatrix().Inv(), p)
}

func (c *Camera) WorldToScreen(p Point) Point {
	return Apply(c.ViewMatrix(), p)
}

// ScreenToWorld converts a screen pixel into world-node coordinates under the
// node's current scale and placement.
func (c *Camera) ScreenToWorld(p Point) Point {
	return Apply(c.ViewMatrix().Inv(), p)
}

// Apply transforms p by the homogeneous 2D matrix m.
func Apply(m mgl64.Mat3, p Point) Point {
	v := m.Mul3x1(mgl64.Vec3{p.X, p.Y, 1})
	return Point{v[0], v[1]}
}

// MapRect transforms r by m and returns the upright bounding rect of the result.
func MapRect(m mgl64.Mat3, r Rect) Rect {
	a := Apply(m, Point{r.MinX(), r.MinY()})
	b := Apply(m, Point{r.MaxX(), r.MaxY()})
	x, y := math.Min(a.X, b.X), math.Min(a.Y, b.Y)
	return Rect{x, y, math.Abs(b.X - a.X), math.Abs(b.Y - a.Y)}
}
