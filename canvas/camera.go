package canvas

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	DefaultScale    = 1.0
	DefaultScaleMin = 1.0
	DefaultScaleMax = 1.5
)

// SceneNode is the content the camera pans and zooms. The camera never owns it;
// it only reads its frame once and pushes scale changes to it.
type SceneNode interface {
	Frame() Rect
	Position() Point
	Scale() float64
	SetScale(s float64)
}

// ScaleRecognizer is the input-side switch for pinch gestures.
type ScaleRecognizer interface {
	SetScaleEnabled(enabled bool)
}

// Camera controls the viewport over a scenario node.
// Position is the scene point shown at the center of the screen.
type Camera struct {
	world       SceneNode
	worldBounds Rect // captured at construction, never refreshed
	viewport    Size

	position Point
	scale    float64
	scaleMin float64
	scaleMax float64

	enabled      bool
	zoomEnabled  bool
	clampEnabled bool
	panEnabled   bool

	// pinch state, valid between began and ended
	anchor    Point
	hasAnchor bool

	// drag state, nil outside of a drag gesture
	prevPointer *Point

	recognizer ScaleRecognizer
	log        *zap.Logger
}

// New creates a camera over world, sized to the given viewport.
func New(viewport Size, world SceneNode) *Camera {
	return &Camera{
		world:        world,
		worldBounds:  world.Frame(),
		viewport:     viewport,
		scale:        DefaultScale,
		scaleMin:     DefaultScaleMin,
		scaleMax:     DefaultScaleMax,
		enabled:      true,
		zoomEnabled:  true,
		clampEnabled: true,
		panEnabled:   true,
		log:          zap.NewNop(),
	}
}

func (c *Camera) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.log = l
}

// BindScaleRecognizer attaches the recognizer that SetEnabled switches along
// with the camera.
func (c *Camera) BindScaleRecognizer(r ScaleRecognizer) {
	c.recognizer = r
	if r != nil {
		r.SetScaleEnabled(c.enabled)
	}
}

func (c *Camera) Position() Point    { return c.position }
func (c *Camera) Scale() float64     { return c.scale }
func (c *Camera) Viewport() Size     { return c.viewport }
func (c *Camera) WorldBounds() Rect  { return c.worldBounds }
func (c *Camera) World() SceneNode   { return c.world }
func (c *Camera) Enabled() bool      { return c.enabled }
func (c *Camera) ZoomEnabled() bool  { return c.zoomEnabled }
func (c *Camera) ClampEnabled() bool { return c.clampEnabled }
func (c *Camera) PanEnabled() bool   { return c.panEnabled }
func (c *Camera) Dragging() bool     { return c.prevPointer != nil }
func (c *Camera) ScaleRange() (float64, float64) {
	return c.scaleMin, c.scaleMax
}

// SetEnabled turns all camera input on or off. The bound scale recognizer is
// switched too, so pinches stop at the source as well as here.
func (c *Camera) SetEnabled(enabled bool) {
	c.enabled = enabled
	if c.recognizer != nil {
		c.recognizer.SetScaleEnabled(enabled)
	}
}

func (c *Camera) SetZoomEnabled(enabled bool)  { c.zoomEnabled = enabled }
func (c *Camera) SetClampEnabled(enabled bool) { c.clampEnabled = enabled }

// SetPanEnabled switches drag-to-pan. With panning off, CenterOnPosition only
// moves while the scale is strictly inside its range.
func (c *Camera) SetPanEnabled(enabled bool) {
	c.panEnabled = enabled
	if !enabled {
		c.prevPointer = nil
	}
}

// SetScaleRange replaces the zoom limits and re-applies the current scale so
// it stays inside them.
func (c *Camera) SetScaleRange(lo, hi float64) error {
	if lo <= 0 || hi <= 0 {
		return errors.Errorf("scale range must be positive, got [%g, %g]", lo, hi)
	}
	if lo > hi {
		return errors.Errorf("scale range min %g exceeds max %g", lo, hi)
	}
	c.scaleMin, c.scaleMax = lo, hi
	c.ApplyZoomScale(c.scale)
	return nil
}

// ApplyZoomScale clamps s into the scale range and applies it to the world node.
func (c *Camera) ApplyZoomScale(s float64) {
	if s < c.scaleMin {
		s = c.scaleMin
	} else if s > c.scaleMax {
		s = c.scaleMax
	}
	c.scale = s
	c.world.SetScale(s)
}

// CenterOnPosition moves the camera to target and clamps it to the world.
// The move only happens while the scale is strictly inside its range or a drag
// is in progress; otherwise the call does nothing.
func (c *Camera) CenterOnPosition(target Point) {
	inRange := c.scale > c.scaleMin && c.scale < c.scaleMax
	if !inRange && c.prevPointer == nil {
		c.log.Debug("center ignored",
			zap.Float64("scale", c.scale),
			zap.Float64("x", target.X),
			zap.Float64("y", target.Y))
		return
	}
	c.position = target
	c.clampWorldNode()
}

// ClampBounds returns the legal range for the camera center. When the world is
// narrower (or shorter) than the viewport the pair for that axis is swapped.
func (c *Camera) ClampBounds() (minX, maxX, minY, maxY float64) {
	frame := c.worldBounds
	halfW := c.viewport.W / 2
	halfH := c.viewport.H / 2

	minX = frame.MinX() + halfW
	maxX = frame.MaxX() - halfW
	minY = frame.MinY() + halfH
	maxY = frame.MaxY() - halfH

	if frame.W < c.viewport.W {
		minX, maxX = maxX, minX
	}
	if frame.H < c.viewport.H {
		minY, maxY = maxY, minY
	}
	return minX, maxX, minY, maxY
}

func (c *Camera) clampWorldNode() {
	if !c.clampEnabled {
		return
	}
	minX, maxX, minY, maxY := c.ClampBounds()

	// pinned values are truncated toward zero; in-range values are left alone
	if c.position.X < minX {
		c.position.X = math.Trunc(minX)
	} else if c.position.X > maxX {
		c.position.X = math.Trunc(maxX)
	}

	if c.position.Y < minY {
		c.position.Y = math.Trunc(minY)
	} else if c.position.Y > maxY {
		c.position.Y = math.Trunc(maxY)
	}
}

// UnmarshalYAML always panics. A camera is bound to a live world node and can
// only be built with New.
func (c *Camera) UnmarshalYAML(*yaml.Node) error {
	panic("canvas: Camera cannot be decoded, construct it with New")
}
