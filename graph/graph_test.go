package graph

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenario-camera/canvas"
)

func TestFrameOfLeaf(t *testing.T) {
	n := NewNode("leaf", canvas.Size{W: 40, H: 20}, color.White)
	n.SetPosition(canvas.Point{X: 10, Y: 5})

	assert.Equal(t, canvas.Rect{X: 10, Y: 5, W: 40, H: 20}, n.Frame())

	n.SetScale(2)
	assert.Equal(t, canvas.Rect{X: 10, Y: 5, W: 80, H: 40}, n.Frame())
}

func TestFrameAccumulatesChildren(t *testing.T) {
	root := NewNode("world", canvas.Size{W: 100, H: 100}, nil)
	a := NewNode("a", canvas.Size{W: 10, H: 10}, nil)
	a.SetPosition(canvas.Point{X: 150, Y: 20})
	b := NewNode("b", canvas.Size{W: 10, H: 10}, nil)
	b.SetPosition(canvas.Point{X: -30, Y: -40})
	root.AddChild(a)
	root.AddChild(b)

	assert.Equal(t, canvas.Rect{X: -30, Y: -40, W: 190, H: 140}, root.Frame())

	root.SetScale(1.5)
	f := root.Frame()
	assert.InDelta(t, -45, f.X, 1e-9)
	assert.InDelta(t, -60, f.Y, 1e-9)
	assert.InDelta(t, 285, f.W, 1e-9)
	assert.InDelta(t, 210, f.H, 1e-9)
}

func TestEmptyNodeFrame(t *testing.T) {
	n := NewNode("empty", canvas.Size{}, nil)
	n.SetPosition(canvas.Point{X: 3, Y: 4})
	assert.Equal(t, canvas.Rect{X: 3, Y: 4}, n.Frame())
}

func TestReparent(t *testing.T) {
	p1 := NewNode("p1", canvas.Size{}, nil)
	p2 := NewNode("p2", canvas.Size{}, nil)
	c := NewNode("c", canvas.Size{W: 1, H: 1}, nil)

	p1.AddChild(c)
	p2.AddChild(c)

	assert.Empty(t, p1.Children())
	require.Len(t, p2.Children(), 1)
	assert.Same(t, p2, c.Parent())

	p2.RemoveChild(c)
	assert.Nil(t, c.Parent())
	assert.Empty(t, p2.Children())
}

func TestFind(t *testing.T) {
	root := NewNode("world", canvas.Size{}, nil)
	row := NewNode("row", canvas.Size{}, nil)
	tile := NewNode("tile-3", canvas.Size{W: 1, H: 1}, nil)
	root.AddChild(row)
	row.AddChild(tile)

	assert.Same(t, tile, root.Find("tile-3"))
	assert.Same(t, root, root.Find("world"))
	assert.Nil(t, root.Find("missing"))
}

func TestWalkComposesTransforms(t *testing.T) {
	root := NewNode("world", canvas.Size{}, nil)
	root.SetScale(2)
	row := NewNode("row", canvas.Size{}, nil)
	row.SetPosition(canvas.Point{X: 10, Y: 0})
	tile := NewNode("tile", canvas.Size{W: 5, H: 5}, nil)
	tile.SetPosition(canvas.Point{X: 0, Y: 7})
	root.AddChild(row)
	row.AddChild(tile)

	seen := map[string]mgl64.Mat3{}
	root.Walk(func(n *Node, toRoot mgl64.Mat3) bool {
		seen[n.Name] = toRoot
		return true
	})
	require.Len(t, seen, 3)

	origin := canvas.Apply(seen["tile"], canvas.Point{})
	assert.InDelta(t, 20, origin.X, 1e-9)
	assert.InDelta(t, 14, origin.Y, 1e-9)
}

func TestWalkSkipsChildren(t *testing.T) {
	root := NewNode("world", canvas.Size{}, nil)
	hidden := NewNode("hidden", canvas.Size{}, nil)
	root.AddChild(hidden)
	hidden.AddChild(NewNode("inner", canvas.Size{}, nil))

	var names []string
	root.Walk(func(n *Node, _ mgl64.Mat3) bool {
		names = append(names, n.Name)
		return n.Name != "hidden"
	})
	assert.Equal(t, []string{"world", "hidden"}, names)
}
