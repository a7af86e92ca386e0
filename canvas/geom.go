package canvas

import "math"

// Point is a 2D location. Scene and world space are y-up; screen space is y-down.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }
func (p Point) Mul(k float64) Point {
	return Point{p.X * k, p.Y * k}
}

// Trunc drops the fractional part of both components, toward zero.
func (p Point) Trunc() Point {
	return Point{math.Trunc(p.X), math.Trunc(p.Y)}
}

type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle anchored at its minimum corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) MinX() float64 { return r.X }
func (r Rect) MaxX() float64 { return r.X + r.W }
func (r Rect) MinY() float64 { return r.Y }
func (r Rect) MaxY() float64 { return r.Y + r.H }
func (r Rect) MidX() float64 { return r.X + r.W/2 }
func (r Rect) MidY() float64 { return r.Y + r.H/2 }

func (r Rect) Size() Size { return Size{r.W, r.H} }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rect containing both. Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	minX := math.Min(r.MinX(), o.MinX())
	minY := math.Min(r.MinY(), o.MinY())
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX() && p.X <= r.MaxX() && p.Y >= r.MinY() && p.Y <= r.MaxY()
}
