package graph

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"scenario-camera/canvas"
)

// Node is an element of the scene tree. Coordinates are y-up; a node's own
// content occupies (0, 0)-(Size.W, Size.H) in its local space.
type Node struct {
	Name  string
	Size  canvas.Size
	Color color.Color

	pos      canvas.Point
	scale    float64
	parent   *Node
	children []*Node
}

var _ canvas.SceneNode = (*Node)(nil)

func NewNode(name string, size canvas.Size, clr color.Color) *Node {
	return &Node{Name: name, Size: size, Color: clr, scale: 1}
}

func (n *Node) Position() canvas.Point     { return n.pos }
func (n *Node) SetPosition(p canvas.Point) { n.pos = p }
func (n *Node) Scale() float64             { return n.scale }
func (n *Node) SetScale(s float64)         { n.scale = s }
func (n *Node) Parent() *Node              { return n.parent }
func (n *Node) Children() []*Node          { return n.children }

// AddChild attaches child to n, detaching it from any previous parent.
func (n *Node) AddChild(child *Node) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Find returns the first descendant (or n itself) with the given name.
func (n *Node) Find(name string) *Node {
	if n.Name == name {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Local returns the node-to-parent transform.
func (n *Node) Local() mgl64.Mat3 {
	return canvas.NodeMatrix(n.pos, n.scale)
}

// contentBounds is the union of the node's own rect and its children's frames,
// in local coordinates.
func (n *Node) contentBounds() canvas.Rect {
	bounds := canvas.Rect{W: n.Size.W, H: n.Size.H}
	for _, c := range n.children {
		bounds = bounds.Union(c.Frame())
	}
	return bounds
}

// Frame returns the accumulated bounds of n and its descendants in the
// parent's coordinate space.
func (n *Node) Frame() canvas.Rect {
	b := n.contentBounds()
	if b.Empty() {
		return canvas.Rect{X: n.pos.X, Y: n.pos.Y}
	}
	return canvas.MapRect(n.Local(), b)
}

// Walk visits n and its descendants depth-first, parents before children.
// toRoot maps the visited node's local space into the space Walk started in.
// Returning false from fn skips that node's children.
func (n *Node) Walk(fn func(node *Node, toRoot mgl64.Mat3) bool) {
	n.walk(mgl64.Ident3(), fn)
}

func (n *Node) walk(parent mgl64.Mat3, fn func(*Node, mgl64.Mat3) bool) {
	m := parent.Mul3(n.Local())
	if !fn(n, m) {
		return
	}
	for _, c := range n.children {
		c.walk(m, fn)
	}
}
