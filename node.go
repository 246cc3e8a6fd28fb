package easel

import "image"

// Geometry is the primitive shape carried by a node. Boxes use all three
// dimensions; planes and grids leave Length at zero. Dimensions are in the
// node's local space before scale: Width along X, Height along Y, Length
// along Z.
type Geometry struct {
	Width         float64
	Height        float64
	Length        float64
	ChamferRadius float64
}

// HalfExtents returns half of each dimension.
func (g Geometry) HalfExtents() Vec3 {
	return Vec3{X: g.Width / 2, Y: g.Height / 2, Z: g.Length / 2}
}

// Material describes how the renderer should shade a primitive: either a
// flat color or an image texture (tinted by Color).
type Material struct {
	Color Color
	Image image.Image
}

// --- ID counter ---

// nodeIDCounter is a plain counter; easel is single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene tree element the renderer consumes. A single flat
// struct is used for every primitive kind so the tree can be walked without
// type switches.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	Position Vec3
	Euler    Vec3 // radians; applied as Ry(Y) * Rx(X) * Rz(Z)
	Scale    Vec3

	// Computed by updateWorldTransform
	worldTransform Mat4
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Geometry & shading
	Geometry Geometry
	Material Material

	// Metadata
	UserData any

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = Vec3{X: 1, Y: 1, Z: 1}
	n.Alpha = 1
	n.Visible = true
	n.Material.Color = ColorWhite
	n.worldTransform = Identity
	n.worldAlpha = 1
	n.transformDirty = true
}

// NewContainer creates a group node with no geometry.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewBox creates a box primitive of the given size.
func NewBox(name string, width, height, length, chamfer float64) *Node {
	n := &Node{
		Name: name,
		Type: NodeTypeBox,
		Geometry: Geometry{
			Width: width, Height: height, Length: length, ChamferRadius: chamfer,
		},
	}
	nodeDefaults(n)
	n.Interactable = true
	return n
}

// NewPlane creates a single-sided rectangle facing local +Z.
func NewPlane(name string, width, height float64) *Node {
	n := &Node{
		Name:     name,
		Type:     NodeTypePlane,
		Geometry: Geometry{Width: width, Height: height},
	}
	nodeDefaults(n)
	n.Interactable = true
	return n
}

// NewGrid creates a region visualization lying in its local XZ plane.
func NewGrid(name string, extent Extent) *Node {
	n := &Node{
		Name:     name,
		Type:     NodeTypeGrid,
		Geometry: Geometry{Width: extent.Width, Height: extent.Depth},
	}
	nodeDefaults(n)
	n.Material.Color = ColorGrid
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("easel: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("easel: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("easel: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("easel: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("easel: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("easel: child's parent is not this node")
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

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// ChildIndex returns the index of child among n's children, or -1.
func (n *Node) ChildIndex(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first order.
// Returning false from fn skips that node's subtree.
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
	n.Material.Image = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
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

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
