package nebula

// Director owns the camera, the light rig, the sparkle field and the single
// rotating group holding every WordNode, and advances them once per frame.
//
// The rotating group's transform is written only by Update.
type Director struct {
	root        *Node
	group       *Node
	placeholder *Node
	sparkles    *Node

	camera   *Camera
	lighting Lighting
	rotation RotationState

	positioned []PositionedWord
	words      []*WordNode
}

// NewDirector creates a director with an empty word list (placeholder shown).
func NewDirector(viewport Rect) *Director {
	d := &Director{
		root:     NewGroup("scene"),
		group:    NewGroup("words"),
		camera:   NewCamera(viewport),
		lighting: DefaultLighting(),
	}
	d.sparkles = NewSparkleNode("sparkles", NewSparkleField(DefaultSparkleConfig()))
	d.placeholder = NewLabel("placeholder", PlaceholderText, PlaceholderSize, PlaceholderColor)

	d.root.AddChild(d.sparkles)
	d.root.AddChild(d.group)
	d.root.AddChild(d.placeholder)
	d.SetWords(nil)
	return d
}

// SetWords lays out words and rebuilds every WordNode from scratch. Hover
// state does not survive the rebuild. words is not retained or modified.
func (d *Director) SetWords(words []WeightedWord) {
	for _, wn := range d.words {
		wn.dispose()
	}
	d.positioned = Layout(words)
	d.words = make([]*WordNode, len(d.positioned))
	for i, pw := range d.positioned {
		wn := NewWordNode(pw)
		d.words[i] = wn
		d.group.AddChild(wn.Node())
	}
	empty := len(d.positioned) == 0
	d.group.Visible = !empty
	d.placeholder.Visible = empty
	d.refreshTransforms()
}

// Update advances the scene by delta seconds, with elapsed seconds since the
// director was mounted. Called exactly once per frame.
func (d *Director) Update(delta, elapsed float64) {
	yaw, pitch := d.rotation.Advance(delta, elapsed)
	d.group.SetRotation(Vec3{X: pitch, Y: yaw})

	for _, wn := range d.words {
		wn.update(elapsed)
	}
	updateSparkles(d.root, delta)
	d.camera.update(delta)
	d.refreshTransforms()
}

// refreshTransforms recomputes world matrices for the whole tree.
func (d *Director) refreshTransforms() {
	updateWorldTransform(d.root, identityTransform, 1, false)
}

// Root returns the scene content root. The returned tree MUST NOT be
// restructured by the caller.
func (d *Director) Root() *Node { return d.root }

// Camera returns the orbit camera.
func (d *Director) Camera() *Camera { return d.camera }

// Lighting returns the fixed light rig.
func (d *Director) Lighting() Lighting { return d.lighting }

// Rotation returns a copy of the rotation state.
func (d *Director) Rotation() RotationState { return d.rotation }

// GroupRotation returns the current Euler rotation of the word group.
func (d *Director) GroupRotation() Vec3 { return d.group.Rotation }

// Words returns the live word nodes. The returned slice MUST NOT be mutated.
func (d *Director) Words() []*WordNode { return d.words }

// Positioned returns the current layout. The returned slice MUST NOT be mutated.
func (d *Director) Positioned() []PositionedWord { return d.positioned }

// PlaceholderVisible reports whether the empty-scene prompt is shown.
func (d *Director) PlaceholderVisible() bool { return d.placeholder.Visible }

// Sparkles returns the ambient particle field.
func (d *Director) Sparkles() *SparkleField { return d.sparkles.Sparkles }

// Dispose releases every node owned by the director.
func (d *Director) Dispose() {
	d.words = nil
	d.positioned = nil
	d.root.Dispose()
}
