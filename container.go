package nebula

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrNotMounted is returned when an operation needs a mounted scene.
	ErrNotMounted = errors.New("nebula: scene is not mounted")
	// ErrAlreadyMounted is returned by Mount on a mounted Container.
	ErrAlreadyMounted = errors.New("nebula: scene is already mounted")
	// ErrNoFont is returned when no label font could be loaded.
	ErrNoFont = errors.New("nebula: no font available")
)

const defaultCommandCap = 512

// Container is the top-level mount point. It owns the render surface
// settings (size, background, fog), the input state and the lifecycle of one
// Director, and implements ebiten.Game.
//
// All methods except RequestStop must be called from the game loop goroutine.
type Container struct {
	// Width and Height are the logical screen size reported to Ebitengine.
	Width, Height int
	// Background fills the frame before anything is drawn.
	Background Color
	// Fog fades labels and sparkles toward the background with depth.
	Fog Fog
	// ShowFPS draws the FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	logger   *log.Logger
	font     *Font
	measurer Measurer
	debug    bool
	sink     EventSink
	input    InputSource
	clock    Clock

	director *Director
	words    []WeightedWord

	// Render state
	commands []RenderCommand
	fps      *fpsOverlay

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	hitBuf       []*Node
	touchBuf     []TouchPoint
	dragDeadZone float64
	touchMap     [maxPointers]int
	touchUsed    [maxPointers]bool
	pinch        pinchState
	injectQueue  []syntheticEvent

	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error

	stopRequested atomic.Bool
}

// NewContainer creates an unmounted container with the default background,
// fog and logger.
func NewContainer(width, height int) *Container {
	return &Container{
		Width:         width,
		Height:        height,
		Background:    BackgroundColor,
		Fog:           DefaultFog(),
		ScreenshotDir: "screenshots",
		logger:        log.NewWithOptions(os.Stderr, log.Options{Prefix: "nebula"}),
		input:         &ebitenInput{},
		clock:         newWallClock(),
		commands:      make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone:  defaultDragDeadZone,
	}
}

// SetLogger replaces the logger. A nil logger is ignored.
func (c *Container) SetLogger(l *log.Logger) {
	if l != nil {
		c.logger = l
		if c.debug {
			debugLogger = l
		}
	}
}

// Logger returns the container's logger.
func (c *Container) Logger() *log.Logger { return c.logger }

// SetFont sets the label font. It also becomes the measurer used for hit
// testing unless SetMeasurer was called.
func (c *Container) SetFont(f *Font) { c.font = f }

// SetMeasurer overrides text measurement for hit testing.
func (c *Container) SetMeasurer(m Measurer) { c.measurer = m }

// SetDebugMode enables per-frame stats and tree checks. Tree warnings go to
// this container's logger.
func (c *Container) SetDebugMode(enabled bool) {
	c.debug = enabled
	globalDebug = enabled
	if enabled {
		c.logger.SetLevel(log.DebugLevel)
		debugLogger = c.logger
	}
}

// SetEventSink forwards hover events to sink. Pass nil to detach.
func (c *Container) SetEventSink(sink EventSink) { c.sink = sink }

// SetInputSource replaces the pointer input source. Pass nil to ignore real
// input (injected events still apply).
func (c *Container) SetInputSource(in InputSource) { c.input = in }

// SetClock replaces the frame clock.
func (c *Container) SetClock(clock Clock) {
	if clock != nil {
		c.clock = clock
	}
}

// SetTestRunner attaches a TestRunner, stepped from Update before input each
// frame.
func (c *Container) SetTestRunner(runner *TestRunner) { c.testRunner = runner }

// SetUpdateFunc registers fn to run at the end of every mounted Update.
// A non-nil error from fn stops the game loop.
func (c *Container) SetUpdateFunc(fn func() error) { c.updateFunc = fn }

// SetWords replaces the word list. The slice is copied; the caller keeps
// ownership of words. When mounted, the scene is rebuilt immediately.
func (c *Container) SetWords(words []WeightedWord) {
	c.words = slices.Clone(words)
	if c.director == nil {
		return
	}
	c.resetPointers()
	c.director.SetWords(c.words)
	c.logger.Debug("words replaced", "count", len(c.words))
}

// Mounted reports whether a Director is running.
func (c *Container) Mounted() bool { return c.director != nil }

// Director returns the running director, or nil when unmounted.
func (c *Container) Director() *Director { return c.director }

// Mount creates a fresh Director from the current word list. The rotation
// state always starts from zero and any earlier stop request is dropped.
func (c *Container) Mount() error {
	if c.director != nil {
		return ErrAlreadyMounted
	}
	if c.font == nil && c.measurer == nil {
		f, err := DefaultFont()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoFont, err)
		}
		c.font = f
	}
	c.stopRequested.Store(false)
	c.director = NewDirector(c.viewport())
	c.director.SetWords(c.words)
	c.clock.Reset()
	c.logger.Debug("mounted", "words", len(c.words))
	return nil
}

// Unmount stops and releases the Director. After Unmount no per-frame
// mutation happens until the next Mount.
func (c *Container) Unmount() error {
	if c.director == nil {
		return ErrNotMounted
	}
	c.resetPointers()
	c.injectQueue = c.injectQueue[:0]
	c.screenshotQueue = c.screenshotQueue[:0]
	c.commands = c.commands[:0]
	c.director.Dispose()
	c.director = nil
	c.logger.Debug("unmounted")
	return nil
}

// resetPointers forgets hover and drag state without firing callbacks; the
// nodes it refers to are about to be disposed.
func (c *Container) resetPointers() {
	c.pointers = [maxPointers]pointerState{}
	c.touchUsed = [maxPointers]bool{}
	c.pinch = pinchState{}
}

// RequestStop asks the game loop to unmount and exit at the next Update.
// Safe to call from any goroutine.
func (c *Container) RequestStop() {
	c.stopRequested.Store(true)
}

func (c *Container) viewport() Rect {
	return Rect{Width: float64(c.Width), Height: float64(c.Height)}
}

func (c *Container) measure(content string, pixelSize float64) (float64, float64) {
	switch {
	case c.measurer != nil:
		return c.measurer.Measure(content, pixelSize)
	case c.font != nil:
		return c.font.Measure(content, pixelSize)
	}
	return 0, 0
}

// --- ebiten.Game ---

// Update advances one frame: scripted steps, input, then the Director.
func (c *Container) Update() error {
	if c.stopRequested.CompareAndSwap(true, false) {
		if c.director != nil {
			_ = c.Unmount()
		}
		return ebiten.Termination
	}
	if c.director == nil {
		return nil
	}

	delta, elapsed := c.clock.Tick()
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.director.Update(delta, elapsed)
	if c.fps != nil {
		c.fps.update(delta)
	}

	if c.updateFunc != nil {
		return c.updateFunc()
	}
	return nil
}

// Draw renders the current frame. Nothing but the background is drawn while
// unmounted.
func (c *Container) Draw(screen *ebiten.Image) {
	screen.Fill(c.Background.toRGBA())
	if c.director == nil {
		return
	}

	var stats frameStats
	c.commands = c.buildCommands(c.commands[:0], &stats)
	c.submit(screen, c.commands, &stats)

	if c.ShowFPS {
		if c.fps == nil {
			c.fps = newFPSOverlay()
		}
		c.fps.draw(screen)
	}
	c.flushScreenshots(screen)
	c.debugLog(stats)
}

// Layout reports the fixed logical screen size and keeps the camera viewport
// in sync with it.
func (c *Container) Layout(outsideWidth, outsideHeight int) (int, int) {
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = outsideWidth, outsideHeight
	}
	if c.director != nil {
		c.director.camera.SetViewport(c.viewport())
	}
	return c.Width, c.Height
}

// Run mounts the container (if needed) and runs the Ebitengine game loop
// until the window is closed, ctx is cancelled or the update func fails.
// The container is unmounted on return.
func (c *Container) Run(ctx context.Context, title string) error {
	if c.director == nil {
		if err := c.Mount(); err != nil {
			return err
		}
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.RequestStop()
		case <-done:
		}
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(c)
	if c.director != nil {
		_ = c.Unmount()
	}
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
