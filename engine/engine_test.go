package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenario-camera/canvas"
	"scenario-camera/graph"
)

func newCamera(t *testing.T) *canvas.Camera {
	t.Helper()
	world := graph.NewNode("world", canvas.Size{W: 1000, H: 1000}, nil)
	return canvas.New(canvas.Size{W: 100, H: 100}, world)
}

func TestDragScript(t *testing.T) {
	cam := newCamera(t)
	cam.SetClampEnabled(false)
	r := NewReplay(cam)

	out, err := r.Run(context.Background(), "drag.star", `
drag_begin(10, 10)
drag(15, 12)
first = position()
drag(20, 9)
drag_end()
last = position()
`)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{-5.0, 2.0}, out["first"])
	assert.Equal(t, []interface{}{-10.0, -1.0}, out["last"])
	assert.Equal(t, 4, r.Samples())
	assert.False(t, cam.Dragging())
}

func TestPinchScript(t *testing.T) {
	cam := newCamera(t)
	r := NewReplay(cam)

	out, err := r.Run(context.Background(), "pinch.star", `
def run(deltas):
    out = []
    pinch_begin(50, 50)
    for d in deltas:
        pinch(d)
        out.append(scale())
    pinch_end()
    return out

steps = run([1.0, 2.0, 0.5])
`)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1.0, 1.5, 1.0}, out["steps"])
}

func TestToggles(t *testing.T) {
	cam := newCamera(t)
	r := NewReplay(cam)

	_, err := r.Run(context.Background(), "toggles.star", `
set_enabled(False)
set_zoom(False)
set_clamp(False)
pinch_begin(50, 50)
pinch(1.4)
`)
	require.NoError(t, err)
	assert.False(t, cam.Enabled())
	assert.False(t, cam.ZoomEnabled())
	assert.False(t, cam.ClampEnabled())
	assert.Equal(t, 1.0, cam.Scale())
}

func TestScriptErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":       "drag_begin(",
		"bad argument": `drag_begin("a", 1)`,
		"bad delta":    "pinch_begin(0, 0)\npinch(-1)",
		"extra args":   "drag_end(1)",
		"runtime":      "fail('boom')",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			r := NewReplay(newCamera(t))
			_, err := r.Run(context.Background(), name+".star", src)
			assert.Error(t, err)
		})
	}
}

func TestScriptErrorMessage(t *testing.T) {
	r := NewReplay(newCamera(t))
	_, err := r.Run(context.Background(), "fail.star", "fail('kaboom')")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "run fail.star: "), err.Error())
	assert.Equal(t, 1, strings.Count(err.Error(), "kaboom"), err.Error())
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReplay(newCamera(t))
	_, err := r.Run(ctx, "loop.star", `
def spin():
    for i in range(100000000):
        drag_begin(i, i)
spin()
`)
	assert.Error(t, err)
}

func TestCancelDuringRun(t *testing.T) {
	const loops = 100000000
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	r := NewReplay(newCamera(t))
	start := time.Now()
	_, err := r.Run(ctx, "spin.star", `
def spin(n):
    for i in range(n):
        drag_begin(i, i)
spin(100000000)
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cancelled")
	assert.Less(t, r.Samples(), loops)
	assert.Less(t, time.Since(start), 10*time.Second)
}
