package nebula

import (
	"math"
	"math/rand/v2"
)

// floatPhaseSpan bounds the random time offset that desynchronizes the idle
// motion of different words.
const floatPhaseSpan = 10000.0

// WordNode renders one PositionedWord as a floating, hoverable label.
//
// The node owns two scene nodes: a float group that carries the idle motion
// and, inside it, the label placed at the word's layout position. The idle
// motion never touches the label's Position, so the layout stays intact.
type WordNode struct {
	word  PositionedWord
	float *Node
	label *Node

	// hovers is a bitmask of the pointer IDs currently over the label.
	hovers uint32
	phase  float64
}

// NewWordNode builds the scene nodes for w in the unhovered state.
func NewWordNode(w PositionedWord) *WordNode {
	wn := &WordNode{
		word:  w,
		float: NewGroup("float:" + w.Word),
		label: NewLabel("word:"+w.Word, w.Word, w.Size, w.Color),
		phase: floatPhase(w.Index),
	}
	wn.label.Position = w.Position
	wn.label.Interactable = true
	wn.label.UserData = wn
	wn.label.OnPointerEnter = func(ctx PointerContext) { wn.PointerEnter(ctx.PointerID) }
	wn.label.OnPointerLeave = func(ctx PointerContext) { wn.PointerLeave(ctx.PointerID) }
	wn.float.AddChild(wn.label)
	return wn
}

// floatPhase derives a per-index time offset. Deterministic so repeated runs
// render identically, but uncorrelated between neighbouring indices.
func floatPhase(index int) float64 {
	r := rand.New(rand.NewPCG(uint64(index), 0x9e3779b97f4a7c15))
	return r.Float64() * floatPhaseSpan
}

// Word returns the positioned word this node renders.
func (wn *WordNode) Word() PositionedWord { return wn.word }

// Node returns the root scene node (the float group).
func (wn *WordNode) Node() *Node { return wn.float }

// Label returns the label scene node.
func (wn *WordNode) Label() *Node { return wn.label }

// Hovered reports whether at least one pointer is over the word.
func (wn *WordNode) Hovered() bool { return wn.hovers != 0 }

// Size returns the current label size: the layout size, times HoverScale
// while hovered.
func (wn *WordNode) Size() float64 {
	if wn.Hovered() {
		return wn.word.Size * HoverScale
	}
	return wn.word.Size
}

// Color returns the current label color: HighlightColor while hovered,
// the layout color otherwise.
func (wn *WordNode) Color() Color {
	if wn.Hovered() {
		return HighlightColor
	}
	return wn.word.Color
}

// PointerEnter marks pointerID as over the word.
func (wn *WordNode) PointerEnter(pointerID int) {
	if pointerID < 0 || pointerID >= 32 {
		return
	}
	wn.hovers |= 1 << uint(pointerID)
	wn.apply()
}

// PointerLeave clears pointerID. The word reverts once no pointer is left.
func (wn *WordNode) PointerLeave(pointerID int) {
	if pointerID < 0 || pointerID >= 32 {
		return
	}
	wn.hovers &^= 1 << uint(pointerID)
	wn.apply()
}

// apply writes the derived size and color into the label. Values are always
// recomputed from the layout, so leaving restores them exactly.
func (wn *WordNode) apply() {
	if wn.label.Label == nil {
		return
	}
	wn.label.Label.Size = wn.Size()
	wn.label.Label.Color = wn.Color()
}

// update sets the float group's idle transform for absolute time elapsed:
// a slow wobble about all three axes and a small vertical bob.
func (wn *WordNode) update(elapsed float64) {
	t := (wn.phase + elapsed) / 4 * FloatSpeed
	sin, cos := math.Sincos(t)
	wn.float.Rotation = Vec3{
		X: cos / 8 * FloatRotationIntensity,
		Y: sin / 8 * FloatRotationIntensity,
		Z: sin / 20 * FloatRotationIntensity,
	}
	wn.float.Position = Vec3{Y: sin / 10 * FloatIntensity}
	wn.float.MarkDirty()
}

// dispose releases the scene nodes.
func (wn *WordNode) dispose() {
	wn.float.Dispose()
	wn.hovers = 0
}
