package canvas

import "go.uber.org/zap"

// Phase is the stage of a continuous gesture.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	}
	return "unknown"
}

// ScaleGesture is one sample of a pinch.
type ScaleGesture struct {
	Phase Phase
	// Scale is the factor accumulated since the last consumed sample. The
	// camera resets it to 1 after applying it.
	Scale float64
	Focus Point // screen space
}

// DragGesture is one sample of a single-finger drag.
type DragGesture struct {
	Phase    Phase
	Location Point // screen space
}

// HandleScale feeds a pinch sample to the camera.
func (c *Camera) HandleScale(g *ScaleGesture) {
	switch g.Phase {
	case PhaseBegan:
		// anchor is in world-node space, not scene space
		c.anchor = c.ScreenToWorld(g.Focus)
		c.hasAnchor = true
	case PhaseChanged:
		if !c.enabled || !c.zoomEnabled {
			c.log.Debug("scale sample ignored",
				zap.Bool("enabled", c.enabled),
				zap.Bool("zoom", c.zoomEnabled))
			return
		}
		if !c.hasAnchor {
			c.log.Debug("scale sample without began")
			return
		}
		c.scale *= g.Scale
		c.ApplyZoomScale(c.scale)
		g.Scale = 1
		c.CenterOnPosition(c.anchor.Mul(c.scale))
	case PhaseEnded, PhaseCancelled:
		c.anchor = Point{}
		c.hasAnchor = false
	}
}

// HandleDrag feeds a drag sample to the camera. Screen y grows downward, so the
// vertical delta is applied with the opposite sign.
func (c *Camera) HandleDrag(g *DragGesture) {
	if !c.panEnabled {
		return
	}
	switch g.Phase {
	case PhaseBegan:
		loc := g.Location
		c.prevPointer = &loc
	case PhaseChanged:
		if c.prevPointer == nil {
			return
		}
		delta := g.Location.Sub(*c.prevPointer)
		target := Point{c.position.X - delta.X, c.position.Y + delta.Y}
		c.CenterOnPosition(target.Trunc())
		loc := g.Location
		c.prevPointer = &loc
	case PhaseEnded, PhaseCancelled:
		c.prevPointer = nil
	}
}
