package nebula

import (
	"cmp"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandLabel   CommandType = iota // centered text
	CommandSparkle                    // filled disc
)

// RenderCommand is a single draw instruction emitted during scene traversal.
// Coordinates are screen pixels; Color is final (lit and fogged).
type RenderCommand struct {
	Type      CommandType
	X, Y      float64
	Depth     float64
	PixelSize float64 // glyph size for labels, radius for sparkles
	Roll      float64 // screen rotation in radians, labels only
	Color     Color
	Text      string
	treeOrder int // assigned during traversal for stable sort
}

// Commands returns the command list built by the last Draw. The slice is
// reused across frames and MUST NOT be retained.
func (c *Container) Commands() []RenderCommand { return c.commands }

// BuildCommands projects the mounted scene into a fresh command list without
// drawing it. Returns nil when unmounted.
func (c *Container) BuildCommands() []RenderCommand {
	if c.director == nil {
		return nil
	}
	var stats frameStats
	return c.buildCommands(nil, &stats)
}

// buildCommands traverses the scene and returns the commands sorted back to
// front.
func (c *Container) buildCommands(buf []RenderCommand, stats *frameStats) []RenderCommand {
	start := time.Now()
	d := c.director
	order := 0
	buf = c.traverse(d.root, 0, buf, &order)
	stats.traverseTime = time.Since(start)

	start = time.Now()
	// Larger depth first; equal depths keep tree order.
	slices.SortStableFunc(buf, func(a, b RenderCommand) int {
		if r := cmp.Compare(b.Depth, a.Depth); r != 0 {
			return r
		}
		return cmp.Compare(a.treeOrder, b.treeOrder)
	})
	stats.sortTime = time.Since(start)
	stats.commandCount = len(buf)
	return buf
}

// traverse walks the node tree depth-first emitting commands for visible
// labels and sparkle fields. roll accumulates ancestor Z rotation.
func (c *Container) traverse(n *Node, roll float64, buf []RenderCommand, order *int) []RenderCommand {
	if !n.Visible {
		return buf
	}
	roll += n.Rotation.Z

	switch n.Type {
	case NodeTypeLabel:
		buf = c.emitLabel(n, roll, buf, order)
	case NodeTypeSparkles:
		buf = c.emitSparkles(n, buf, order)
	}
	for _, child := range n.children {
		buf = c.traverse(child, roll, buf, order)
	}
	return buf
}

func (c *Container) emitLabel(n *Node, roll float64, buf []RenderCommand, order *int) []RenderCommand {
	lbl := n.Label
	if lbl == nil || lbl.Content == "" {
		return buf
	}
	cam := c.director.camera
	p := n.WorldPosition()
	sx, sy, depth, ok := cam.Project(p)
	if !ok {
		return buf
	}
	px := lbl.Size * n.worldScale * cam.PixelsPerUnit(depth)
	if px <= 0 {
		return buf
	}
	normal := cam.Position().Sub(p).Normalize()
	col := c.director.lighting.Highlight(lbl.Color, p, normal)
	col = c.Fog.Apply(col, depth)

	*order++
	return append(buf, RenderCommand{
		Type:      CommandLabel,
		X:         sx,
		Y:         sy,
		Depth:     depth,
		PixelSize: px,
		Roll:      roll,
		Color:     col,
		Text:      lbl.Content,
		treeOrder: *order,
	})
}

func (c *Container) emitSparkles(n *Node, buf []RenderCommand, order *int) []RenderCommand {
	f := n.Sparkles
	if f == nil {
		return buf
	}
	cam := c.director.camera
	for i := range f.Len() {
		local, alpha, size := f.Particle(i)
		sx, sy, depth, ok := cam.Project(n.LocalToWorld(local))
		if !ok {
			continue
		}
		col := c.Fog.Apply(f.Color, depth)
		col.A *= alpha
		*order++
		buf = append(buf, RenderCommand{
			Type:      CommandSparkle,
			X:         sx,
			Y:         sy,
			Depth:     depth,
			PixelSize: size * CameraDistance / depth,
			Color:     col,
			treeOrder: *order,
		})
	}
	return buf
}

// submit draws the sorted commands onto screen.
func (c *Container) submit(screen *ebiten.Image, commands []RenderCommand, stats *frameStats) {
	start := time.Now()
	for i := range commands {
		cmd := &commands[i]
		switch cmd.Type {
		case CommandSparkle:
			vector.DrawFilledCircle(screen, float32(cmd.X), float32(cmd.Y),
				float32(cmd.PixelSize), cmd.Color.toRGBA(), true)
			stats.drawCallCount++
		case CommandLabel:
			if c.font == nil {
				continue
			}
			c.drawLabel(screen, cmd)
			stats.drawCallCount++
		}
	}
	stats.submitTime = time.Since(start)
}

func (c *Container) drawLabel(screen *ebiten.Image, cmd *RenderCommand) {
	face := c.font.Face(cmd.PixelSize)
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = lineHeight(face)
	// Screen Y points down, so a positive world roll turns counterclockwise.
	op.GeoM.Rotate(-cmd.Roll)
	op.GeoM.Translate(cmd.X, cmd.Y)
	op.ColorScale.ScaleWithColor(cmd.Color.toRGBA())
	text.Draw(screen, cmd.Text, face, op)
}
