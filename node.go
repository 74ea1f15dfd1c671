package nebula

// PointerContext carries pointer event data.
type PointerContext struct {
	Node      *Node
	UserData  any
	ScreenX   float64
	ScreenY   float64
	Depth     float64 // view-space depth of the node, 0 when Node is nil
	Button    MouseButton
	PointerID int
}

// DragContext carries drag event data in screen pixels.
type DragContext struct {
	Node      *Node
	ScreenX   float64
	ScreenY   float64
	StartX    float64
	StartY    float64
	DeltaX    float64
	DeltaY    float64
	Button    MouseButton
	PointerID int
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic: the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Label is the visual payload of a NodeTypeLabel node.
type Label struct {
	Content string
	// Size is the glyph height in world units before the node's scale.
	Size  float64
	Color Color
}

// --- Node ---

// Node is the scene graph element. A single flat struct is used for all node
// types to avoid interface dispatch on the hot path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is Euler XYZ in radians.
	Position Vec3
	Rotation Vec3
	Scale    float64

	// Computed during the update walk.
	worldTransform [12]float64
	worldScale     float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Metadata
	UserData any

	// Label fields (NodeTypeLabel)
	Label *Label

	// Sparkle fields (NodeTypeSparkles)
	Sparkles *SparkleField

	// Per-node callbacks (nil by default)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Scale = 1
	n.Visible = true
	n.transformDirty = true
	n.worldTransform = identityTransform
	n.worldScale = 1
}

// NewGroup creates a transform-only node.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewLabel creates a billboarded text node.
func NewLabel(name, content string, size float64, c Color) *Node {
	n := &Node{
		Name:  name,
		Type:  NodeTypeLabel,
		Label: &Label{Content: content, Size: size, Color: c},
	}
	nodeDefaults(n)
	return n
}

// NewSparkleNode creates a node that renders a sparkle field.
func NewSparkleNode(name string, field *SparkleField) *Node {
	n := &Node{Name: name, Type: NodeTypeSparkles, Sparkles: field}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("nebula: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("nebula: adding child would create a cycle")
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
		panic("nebula: child's parent is not this node")
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

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
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
	n.Label = nil
	n.Sparkles = nil
	n.UserData = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
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
