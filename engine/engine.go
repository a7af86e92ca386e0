package engine

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"go.starlark.net/starlark"
	"go.uber.org/zap"

	"scenario-camera/canvas"
	"scenario-camera/logging"
)

// Target is what a replay script drives. *canvas.Camera satisfies it.
type Target interface {
	HandleScale(g *canvas.ScaleGesture)
	HandleDrag(g *canvas.DragGesture)
	Position() canvas.Point
	Scale() float64
	SetEnabled(enabled bool)
	SetZoomEnabled(enabled bool)
	SetClampEnabled(enabled bool)
}

// Replay feeds gestures described by a Starlark script into a Target.
type Replay struct {
	target Target
	log    *zap.Logger

	pinch   canvas.ScaleGesture
	drag    canvas.DragGesture
	samples int
}

func NewReplay(target Target) *Replay {
	return &Replay{target: target, log: zap.NewNop()}
}

// Samples is the number of gesture samples delivered so far.
func (r *Replay) Samples() int { return r.samples }

// Run executes script and returns its globals converted to Go values.
// Cancelling ctx stops the script at the next step.
func (r *Replay) Run(ctx context.Context, name, script string) (map[string]interface{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "run %s", name)
	}
	r.log = logging.From(ctx).Named("replay").With(zap.String("script", name))

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			r.log.Info(msg)
		},
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	globals, err := starlark.ExecFile(thread, name, script, r.builtins())
	if err != nil {
		if evalErr, ok := err.(*starlark.EvalError); ok {
			r.log.Debug("replay failed", zap.String("backtrace", evalErr.Backtrace()))
		}
		return nil, errors.Wrapf(err, "run %s", name)
	}
	r.log.Debug("replay finished", zap.Int("samples", r.samples))

	out := make(map[string]interface{})
	for k, v := range globals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

func (r *Replay) builtins() starlark.StringDict {
	return starlark.StringDict{
		"pinch_begin": starlark.NewBuiltin("pinch_begin", r.pinchBegin),
		"pinch":       starlark.NewBuiltin("pinch", r.pinchChange),
		"pinch_end":   starlark.NewBuiltin("pinch_end", r.pinchEnd),
		"drag_begin":  starlark.NewBuiltin("drag_begin", r.dragBegin),
		"drag":        starlark.NewBuiltin("drag", r.dragChange),
		"drag_end":    starlark.NewBuiltin("drag_end", r.dragEnd),
		"position":    starlark.NewBuiltin("position", r.position),
		"scale":       starlark.NewBuiltin("scale", r.scale),
		"set_enabled": starlark.NewBuiltin("set_enabled", r.toggle(r.target.SetEnabled)),
		"set_zoom":    starlark.NewBuiltin("set_zoom", r.toggle(r.target.SetZoomEnabled)),
		"set_clamp":   starlark.NewBuiltin("set_clamp", r.toggle(r.target.SetClampEnabled)),
	}
}

func (r *Replay) sendScale() {
	r.samples++
	r.target.HandleScale(&r.pinch)
}

func (r *Replay) sendDrag() {
	r.samples++
	r.target.HandleDrag(&r.drag)
}

func (r *Replay) pinchBegin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	xy, err := unpackFloats(b, args, kwargs, "x", "y")
	if err != nil {
		return nil, err
	}
	r.pinch = canvas.ScaleGesture{
		Phase: canvas.PhaseBegan,
		Scale: 1,
		Focus: canvas.Point{X: xy[0], Y: xy[1]},
	}
	r.sendScale()
	return starlark.None, nil
}

func (r *Replay) pinchChange(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	d, err := unpackFloats(b, args, kwargs, "delta")
	if err != nil {
		return nil, err
	}
	if d[0] <= 0 {
		return nil, fmt.Errorf("%s: delta must be positive, got %g", b.Name(), d[0])
	}
	r.pinch.Phase = canvas.PhaseChanged
	r.pinch.Scale *= d[0]
	r.sendScale()
	return starlark.None, nil
}

func (r *Replay) pinchEnd(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	r.pinch.Phase = canvas.PhaseEnded
	r.sendScale()
	return starlark.None, nil
}

func (r *Replay) dragBegin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	xy, err := unpackFloats(b, args, kwargs, "x", "y")
	if err != nil {
		return nil, err
	}
	r.drag = canvas.DragGesture{Phase: canvas.PhaseBegan, Location: canvas.Point{X: xy[0], Y: xy[1]}}
	r.sendDrag()
	return starlark.None, nil
}

func (r *Replay) dragChange(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	xy, err := unpackFloats(b, args, kwargs, "x", "y")
	if err != nil {
		return nil, err
	}
	r.drag = canvas.DragGesture{Phase: canvas.PhaseChanged, Location: canvas.Point{X: xy[0], Y: xy[1]}}
	r.sendDrag()
	return starlark.None, nil
}

func (r *Replay) dragEnd(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	r.drag.Phase = canvas.PhaseEnded
	r.sendDrag()
	return starlark.None, nil
}

func (r *Replay) position(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	p := r.target.Position()
	return starlark.Tuple{starlark.Float(p.X), starlark.Float(p.Y)}, nil
}

func (r *Replay) scale(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.Float(r.target.Scale()), nil
}

func (r *Replay) toggle(set func(bool)) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var on bool
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "on", &on); err != nil {
			return nil, err
		}
		set(on)
		return starlark.None, nil
	}
}

// unpackFloats accepts ints or floats for each named parameter.
func unpackFloats(b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, names ...string) ([]float64, error) {
	vals := make([]starlark.Value, len(names))
	pairs := make([]interface{}, 0, 2*len(names))
	for i, n := range names {
		pairs = append(pairs, n, &vals[i])
	}
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, pairs...); err != nil {
		return nil, err
	}
	out := make([]float64, len(names))
	for i, v := range vals {
		f, ok := starlark.AsFloat(v)
		if !ok {
			return nil, fmt.Errorf("%s: %s must be a number, got %s", b.Name(), names[i], v.Type())
		}
		out[i] = f
	}
	return out, nil
}

// FromStarlarkValue converts script results to plain Go values. Unknown types
// become nil.
func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case starlark.Tuple:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = FromStarlarkValue(e)
		}
		return out
	case *starlark.List:
		out := make([]interface{}, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = FromStarlarkValue(val.Index(i))
		}
		return out
	}
	return nil
}
