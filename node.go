package birthday

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// HoverContext carries pointer enter/leave data. Hovering is true on enter.
type HoverContext struct {
	Node     *Node
	Hovering bool
	ScreenX  float64
	ScreenY  float64
}

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	ScreenX float64
	ScreenY float64
}

// nodeIDCounter is a plain counter (no atomic; the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. A single flat struct is used for all node
// kinds to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Kind NodeKind

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is Euler XYZ in radians.
	Position Vec3
	Rotation Vec3
	Scale    Vec3

	worldMatrix    mgl64.Mat4
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Metadata
	UserData any

	// Mesh fields (NodeMesh)
	Geometry *Geometry
	Color    Color
	Texture  *ebiten.Image
	// Unlit meshes ignore scene lights (flames, glowing paper).
	Unlit bool

	// Light fields (NodeLight)
	Light *Light

	// Points fields (NodePoints)
	Fireworks *Fireworks

	// Per-node callbacks (nil by default)
	OnClick func(ClickContext)
	OnHover func(HoverContext)

	hovered  bool
	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{1, 1, 1}
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.worldMatrix = mgl64.Ident4()
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Kind: NodeGroup}
	nodeDefaults(n)
	return n
}

// NewMesh creates a flat-shaded mesh node.
func NewMesh(name string, geo *Geometry, c Color) *Node {
	n := &Node{Name: name, Kind: NodeMesh, Geometry: geo}
	nodeDefaults(n)
	n.Color = c
	return n
}

// NewLight creates a light node.
func NewLight(name string, light Light) *Node {
	n := &Node{Name: name, Kind: NodeLight, Light: &light}
	nodeDefaults(n)
	return n
}

// NewPoints creates a point-cloud node hosting a fireworks controller.
func NewPoints(name string, fw *Fireworks) *Node {
	n := &Node{Name: name, Kind: NodePoints, Fireworks: fw}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("birthday: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("birthday: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("birthday: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// FindChild returns the first descendant (depth-first) with the given name.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.FindChild(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order. Returning
// false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Geometry = nil
	n.Texture = nil
	n.Light = nil
	if n.Fireworks != nil {
		n.Fireworks.SetActive(false, 0)
		n.Fireworks = nil
	}
	n.UserData = nil
	n.OnClick = nil
	n.OnHover = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
