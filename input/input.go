package input

import (
	"math"

	"go.uber.org/zap"

	"scenario-camera/canvas"
)

// Handler receives recognized gesture samples.
type Handler interface {
	HandleScale(g *canvas.ScaleGesture)
	HandleDrag(g *canvas.DragGesture)
}

// Touch is one contact point in screen pixels.
type Touch struct {
	ID   int
	X, Y float64
}

type mode int

const (
	idle mode = iota
	dragging
	pinching
)

// Recognizer turns per-frame touch snapshots into drag and pinch samples.
// One finger drags, two fingers pinch. A change in the set of fingers ends
// the running gesture; the next frame may start a new one.
type Recognizer struct {
	handler      Handler
	scaleEnabled bool
	log          *zap.Logger

	mode    mode
	ids     [2]int
	drag    canvas.DragGesture
	pinch   canvas.ScaleGesture
	spacing float64 // finger distance at the last pinch sample
}

func NewRecognizer(h Handler, log *zap.Logger) *Recognizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recognizer{handler: h, scaleEnabled: true, log: log}
}

func (r *Recognizer) ScaleEnabled() bool { return r.scaleEnabled }

// SetScaleEnabled switches pinch recognition. Disabling cancels a pinch in
// progress.
func (r *Recognizer) SetScaleEnabled(enabled bool) {
	r.scaleEnabled = enabled
	if !enabled && r.mode == pinching {
		r.pinch.Phase = canvas.PhaseCancelled
		r.handler.HandleScale(&r.pinch)
		r.mode = idle
	}
}

// Update consumes the touches active this frame.
func (r *Recognizer) Update(touches []Touch) {
	switch r.mode {
	case dragging:
		if len(touches) != 1 || touches[0].ID != r.ids[0] {
			r.endDrag()
		}
	case pinching:
		if len(touches) != 2 || !r.samePair(touches) {
			r.endPinch()
		}
	}

	switch r.mode {
	case idle:
		r.begin(touches)
	case dragging:
		loc := canvas.Point{X: touches[0].X, Y: touches[0].Y}
		if loc == r.drag.Location {
			return
		}
		r.drag.Phase = canvas.PhaseChanged
		r.drag.Location = loc
		r.handler.HandleDrag(&r.drag)
	case pinching:
		spacing := distance(touches[0], touches[1])
		// overlapping fingers carry no ratio; the last good spacing stays
		// the reference
		if spacing <= 0 || spacing == r.spacing {
			return
		}
		if r.spacing <= 0 {
			r.spacing = spacing
			return
		}
		r.pinch.Phase = canvas.PhaseChanged
		r.pinch.Scale *= spacing / r.spacing
		r.pinch.Focus = midpoint(touches[0], touches[1])
		r.spacing = spacing
		r.handler.HandleScale(&r.pinch)
	}
}

// Zoom emits a complete pinch (began, changed, ended) of the given factor
// around focus. It is used for wheel and keyboard zoom. It does nothing while
// another gesture is running or pinching is disabled.
func (r *Recognizer) Zoom(focus canvas.Point, factor float64) {
	if !r.scaleEnabled || r.mode != idle || factor <= 0 || factor == 1 {
		return
	}
	g := canvas.ScaleGesture{Phase: canvas.PhaseBegan, Scale: 1, Focus: focus}
	r.handler.HandleScale(&g)
	g.Phase = canvas.PhaseChanged
	g.Scale = factor
	r.handler.HandleScale(&g)
	g.Phase = canvas.PhaseEnded
	r.handler.HandleScale(&g)
}

// Reset ends whatever gesture is running.
func (r *Recognizer) Reset() {
	switch r.mode {
	case dragging:
		r.endDrag()
	case pinching:
		r.endPinch()
	}
}

func (r *Recognizer) begin(touches []Touch) {
	switch len(touches) {
	case 1:
		r.mode = dragging
		r.ids[0] = touches[0].ID
		r.drag = canvas.DragGesture{
			Phase:    canvas.PhaseBegan,
			Location: canvas.Point{X: touches[0].X, Y: touches[0].Y},
		}
		r.handler.HandleDrag(&r.drag)
	case 2:
		if !r.scaleEnabled {
			return
		}
		r.mode = pinching
		r.ids = [2]int{touches[0].ID, touches[1].ID}
		r.spacing = distance(touches[0], touches[1])
		r.pinch = canvas.ScaleGesture{
			Phase: canvas.PhaseBegan,
			Scale: 1,
			Focus: midpoint(touches[0], touches[1]),
		}
		r.handler.HandleScale(&r.pinch)
	default:
		if len(touches) > 2 {
			r.log.Debug("ignoring touches", zap.Int("count", len(touches)))
		}
	}
}

func (r *Recognizer) endDrag() {
	r.drag.Phase = canvas.PhaseEnded
	r.handler.HandleDrag(&r.drag)
	r.mode = idle
}

func (r *Recognizer) endPinch() {
	r.pinch.Phase = canvas.PhaseEnded
	r.handler.HandleScale(&r.pinch)
	r.mode = idle
}

func (r *Recognizer) samePair(touches []Touch) bool {
	a, b := touches[0].ID, touches[1].ID
	return (a == r.ids[0] && b == r.ids[1]) || (a == r.ids[1] && b == r.ids[0])
}

func distance(a, b Touch) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func midpoint(a, b Touch) canvas.Point {
	return canvas.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
