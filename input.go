package nebula

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// TouchPoint is one active touch in screen pixels.
type TouchPoint struct {
	ID   int
	X, Y float64
}

// InputSource supplies raw pointer state once per frame.
type InputSource interface {
	// CursorPosition returns the mouse position in screen pixels.
	CursorPosition() (x, y float64)
	// MouseButton reports whether a button is held, and which.
	MouseButton() (pressed bool, button MouseButton)
	// Wheel returns the vertical scroll since the last frame, in notches.
	// Positive values scroll up (zoom in).
	Wheel() float64
	// AppendTouches appends the active touches to dst.
	AppendTouches(dst []TouchPoint) []TouchPoint
}

// ebitenInput reads pointer state from Ebitengine.
type ebitenInput struct {
	ids []ebiten.TouchID
}

func (in *ebitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (in *ebitenInput) MouseButton() (bool, MouseButton) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return true, MouseButtonMiddle
	}
	return false, MouseButtonLeft
}

func (in *ebitenInput) Wheel() float64 {
	_, dy := ebiten.Wheel()
	return dy
}

func (in *ebitenInput) AppendTouches(dst []TouchPoint) []TouchPoint {
	in.ids = ebiten.AppendTouchIDs(in.ids[:0])
	for _, id := range in.ids {
		x, y := ebiten.TouchPosition(id)
		dst = append(dst, TouchPoint{ID: int(id), X: float64(x), Y: float64(y)})
	}
	return dst
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hoverNode *Node // last node the pointer was over (for enter/leave)
	dragging  bool
	button    MouseButton // button captured at press time
}

// --- Pinch state ---

type pinchState struct {
	active   bool
	prevDist float64
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type dragHandler struct {
	id uint32
	fn func(DragContext)
}

type handlerRegistry struct {
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	dragStart    []dragHandler
	drag         []dragHandler
	dragEnd      []dragHandler
	nextID       uint32
}

// CallbackHandle allows removing a registered container-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventDragStart:
		h.reg.dragStart = removeHandler(h.reg.dragStart, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDrag:
		h.reg.drag = removeHandler(h.reg.drag, h.id, func(d dragHandler) uint32 { return d.id })
	case EventDragEnd:
		h.reg.dragEnd = removeHandler(h.reg.dragEnd, h.id, func(d dragHandler) uint32 { return d.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Container-level event registration ---

// OnPointerEnter registers a callback fired when a pointer moves onto a label.
func (c *Container) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointerEnter = append(c.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a callback fired when a pointer leaves a label.
func (c *Container) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.pointerLeave = append(c.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventPointerLeave}
}

// OnDragStart registers a callback fired when an orbit drag begins.
func (c *Container) OnDragStart(fn func(DragContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.dragStart = append(c.handlers.dragStart, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventDragStart}
}

// OnDrag registers a callback fired on every frame of an orbit drag.
func (c *Container) OnDrag(fn func(DragContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.drag = append(c.handlers.drag, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventDrag}
}

// OnDragEnd registers a callback fired when an orbit drag ends.
func (c *Container) OnDragEnd(fn func(DragContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.dragEnd = append(c.handlers.dragEnd, dragHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, event: EventDragEnd}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (c *Container) SetDragDeadZone(pixels float64) {
	c.dragDeadZone = pixels
}

// --- Hit testing ---

// collectInteractable walks the tree depth-first, appending visible
// interactable labels to buf. Skips Visible=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible {
		return buf
	}
	if n.Interactable && n.Type == NodeTypeLabel && n.Label != nil {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// labelScreenRect returns the pointer rectangle of a label centered on its
// projected origin, and its view depth.
func (c *Container) labelScreenRect(cam *Camera, n *Node) (Rect, float64, bool) {
	sx, sy, depth, ok := cam.Project(n.WorldPosition())
	if !ok {
		return Rect{}, depth, false
	}
	px := n.Label.Size * n.worldScale * cam.PixelsPerUnit(depth)
	w, h := c.measure(n.Label.Content, px)
	if w == 0 && h == 0 {
		return Rect{}, depth, false
	}
	return Rect{X: sx - w/2, Y: sy - h/2, Width: w, Height: h}, depth, true
}

// hitTest finds the front-most label under (sx, sy). Returns nil if nothing
// is hit.
func (c *Container) hitTest(sx, sy float64) (*Node, float64) {
	if c.director == nil {
		return nil, 0
	}
	cam := c.director.camera
	c.hitBuf = collectInteractable(c.director.root, c.hitBuf[:0])

	var best *Node
	bestDepth := math.Inf(1)
	for _, n := range c.hitBuf {
		r, depth, ok := c.labelScreenRect(cam, n)
		if !ok || !r.Contains(sx, sy) {
			continue
		}
		if depth < bestDepth {
			best, bestDepth = n, depth
		}
	}
	if best == nil {
		return nil, 0
	}
	return best, bestDepth
}

// --- Input processing ---

// processInput is called once per frame to handle mouse, wheel and touch
// input. An injected event, when queued, replaces real input for the frame.
func (c *Container) processInput() {
	if c.processInjectedInput() {
		return
	}
	if c.input == nil {
		return
	}

	mx, my := c.input.CursorPosition()
	pressed, button := c.input.MouseButton()
	c.processPointer(0, mx, my, pressed, button)

	if w := c.input.Wheel(); w != 0 {
		c.director.camera.Wheel(w)
	}

	c.processTouchPointers()
	c.detectPinch()
}

// processTouchPointers handles touch input (pointers 1-9).
func (c *Container) processTouchPointers() {
	c.touchBuf = c.input.AppendTouches(c.touchBuf[:0])

	var activeSlots [maxPointers]bool
	for _, tp := range c.touchBuf {
		slot := c.touchSlot(tp.ID)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true
		c.processPointer(slot, tp.X, tp.Y, true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && !activeSlots[i] {
			ps := &c.pointers[i]
			if ps.down {
				c.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			c.releaseHover(i)
			c.touchUsed[i] = false
			c.touchMap[i] = 0
		}
	}
}

// touchSlot maps a touch ID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (c *Container) touchSlot(id int) int {
	for i := 1; i < maxPointers; i++ {
		if c.touchUsed[i] && c.touchMap[i] == id {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !c.touchUsed[i] {
			c.touchUsed[i] = true
			c.touchMap[i] = id
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (c *Container) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton) {
	ps := &c.pointers[pointerID]

	target, depth := c.hitTest(sx, sy)

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			c.firePointerLeave(ps.hoverNode, pointerID, sx, sy, button, 0)
		}
		if target != nil {
			c.firePointerEnter(target, pointerID, sx, sy, button, depth)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = sx, sy
		ps.lastX, ps.lastY = sx, sy
		ps.dragging = false
	case !pressed && ps.down:
		if ps.dragging {
			c.fireDrag(c.handlers.dragEnd, ps, pointerID, sx, sy)
		}
		ps.down = false
		ps.dragging = false
		ps.lastX, ps.lastY = sx, sy
	case pressed && ps.down:
		if sx != ps.lastX || sy != ps.lastY {
			if !ps.dragging {
				dx := sx - ps.startX
				dy := sy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > c.dragDeadZone {
					ps.dragging = true
					c.fireDrag(c.handlers.dragStart, ps, pointerID, sx, sy)
				}
			}
			if ps.dragging && !c.pinch.active {
				// Only the primary button orbits; pan is not supported.
				if ps.button == MouseButtonLeft {
					c.director.camera.Orbit(sx-ps.lastX, sy-ps.lastY)
				}
				c.fireDrag(c.handlers.drag, ps, pointerID, sx, sy)
			}
		}
		ps.lastX, ps.lastY = sx, sy
	default:
		ps.lastX, ps.lastY = sx, sy
	}
}

// releaseHover fires a leave for whatever pointerID is over, if anything.
func (c *Container) releaseHover(pointerID int) {
	ps := &c.pointers[pointerID]
	if ps.hoverNode != nil {
		c.firePointerLeave(ps.hoverNode, pointerID, ps.lastX, ps.lastY, ps.button, 0)
		ps.hoverNode = nil
	}
}

// --- Pinch detection ---

// detectPinch zooms the camera while exactly two touches are down.
func (c *Container) detectPinch() {
	var p0, p1 *pointerState
	count := 0
	for i := 1; i < maxPointers; i++ {
		if c.pointers[i].down {
			count++
			if p0 == nil {
				p0 = &c.pointers[i]
			} else if p1 == nil {
				p1 = &c.pointers[i]
			}
		}
	}
	if count != 2 {
		c.pinch.active = false
		return
	}

	dist := math.Hypot(p1.lastX-p0.lastX, p1.lastY-p0.lastY)
	if !c.pinch.active {
		c.pinch.active = true
		c.pinch.prevDist = dist
	} else if dist > 0 && c.pinch.prevDist > 0 {
		// Spreading the fingers zooms in.
		c.director.camera.ZoomBy(c.pinch.prevDist / dist)
		c.pinch.prevDist = dist
	}
	p0.dragging = false
	p1.dragging = false
}

// --- Event dispatch ---

func (c *Container) pointerContext(node *Node, pointerID int, sx, sy float64, button MouseButton, depth float64) PointerContext {
	return PointerContext{
		Node: node, UserData: node.UserData,
		ScreenX: sx, ScreenY: sy, Depth: depth,
		Button: button, PointerID: pointerID,
	}
}

func (c *Container) firePointerEnter(node *Node, pointerID int, sx, sy float64, button MouseButton, depth float64) {
	ctx := c.pointerContext(node, pointerID, sx, sy, button, depth)
	for _, h := range c.handlers.pointerEnter {
		h.fn(ctx)
	}
	if node.OnPointerEnter != nil {
		node.OnPointerEnter(ctx)
	}
	c.emitHoverEvent(EventPointerEnter, ctx)
}

func (c *Container) firePointerLeave(node *Node, pointerID int, sx, sy float64, button MouseButton, depth float64) {
	ctx := c.pointerContext(node, pointerID, sx, sy, button, depth)
	for _, h := range c.handlers.pointerLeave {
		h.fn(ctx)
	}
	if node.OnPointerLeave != nil {
		node.OnPointerLeave(ctx)
	}
	c.emitHoverEvent(EventPointerLeave, ctx)
}

func (c *Container) fireDrag(handlers []dragHandler, ps *pointerState, pointerID int, sx, sy float64) {
	if len(handlers) == 0 {
		return
	}
	ctx := DragContext{
		ScreenX: sx, ScreenY: sy,
		StartX: ps.startX, StartY: ps.startY,
		DeltaX: sx - ps.lastX, DeltaY: sy - ps.lastY,
		Button: ps.button, PointerID: pointerID,
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
}

// --- Event sink bridge ---

// HoverEvent describes a pointer entering or leaving a word.
type HoverEvent struct {
	Type      EventType
	Word      string
	Index     int
	PointerID int
	ScreenX   float64
	ScreenY   float64
}

// EventSink receives hover events, e.g. to forward them into an ECS world.
type EventSink interface {
	EmitHover(event HoverEvent)
}

func (c *Container) emitHoverEvent(eventType EventType, ctx PointerContext) {
	if c.sink == nil {
		return
	}
	wn, ok := ctx.UserData.(*WordNode)
	if !ok {
		return
	}
	c.sink.EmitHover(HoverEvent{
		Type:      eventType,
		Word:      wn.word.Word,
		Index:     wn.word.Index,
		PointerID: ctx.PointerID,
		ScreenX:   ctx.ScreenX,
		ScreenY:   ctx.ScreenY,
	})
}
