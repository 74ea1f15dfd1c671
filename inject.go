package nebula

// syntheticKind distinguishes the injected event types.
type syntheticKind uint8

const (
	syntheticPointer syntheticKind = iota
	syntheticWheel
)

// syntheticEvent represents a single injected input event in screen pixels.
type syntheticEvent struct {
	kind             syntheticKind
	screenX, screenY float64
	pressed          bool
	button           MouseButton
	wheel            float64
}

func (c *Container) inject(evt syntheticEvent) {
	c.injectQueue = append(c.injectQueue, evt)
}

// InjectHover queues a pointer move at the given screen coordinates with no
// button held. The event is consumed on the next frame.
func (c *Container) InjectHover(x, y float64) {
	c.inject(syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, button: MouseButtonLeft})
}

// InjectPress queues a left-button press at the given screen coordinates.
func (c *Container) InjectPress(x, y float64) {
	c.inject(syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, pressed: true, button: MouseButtonLeft})
}

// InjectMove queues a pointer move with the left button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Container) InjectMove(x, y float64) {
	c.inject(syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, pressed: true, button: MouseButtonLeft})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (c *Container) InjectRelease(x, y float64) {
	c.inject(syntheticEvent{kind: syntheticPointer, screenX: x, screenY: y, button: MouseButtonLeft})
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The sequence consumes `frames` frames; minimum 2.
func (c *Container) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a scroll of the given notches. Positive zooms in.
func (c *Container) InjectWheel(notches float64) {
	c.inject(syntheticEvent{kind: syntheticWheel, wheel: notches})
}

// PendingInjections returns the number of queued synthetic events.
func (c *Container) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the same path as real input. Returns true if an event was consumed
// (real input is skipped for that frame).
func (c *Container) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case syntheticWheel:
		c.director.camera.Wheel(evt.wheel)
	default:
		c.processPointer(0, evt.screenX, evt.screenY, evt.pressed, evt.button)
	}
	return true
}
