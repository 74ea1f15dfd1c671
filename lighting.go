package nebula

// AmbientLight lights every surface uniformly.
type AmbientLight struct {
	Color     Color
	Intensity float64
}

// PointLight lights surfaces facing its position.
type PointLight struct {
	Position  Vec3
	Color     Color
	Intensity float64
}

// Lighting is the fixed light rig of a scene. It never changes at runtime.
type Lighting struct {
	Ambient AmbientLight
	Points  []PointLight
}

// DefaultLighting returns the ambient fill, a warm-white key light and a cool
// accent light from the opposite side.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient: AmbientLight{Color: ColorWhite, Intensity: AmbientIntensity},
		Points: []PointLight{
			{Position: KeyLightPosition, Color: ColorWhite, Intensity: KeyIntensity},
			{Position: AccentLightPosition, Color: AccentColor, Intensity: AccentIntensity},
		},
	}
}

// Shade returns base lit by the rig at point p with surface normal n
// (Lambert diffuse, per channel, clamped to [0, 1]).
func (l Lighting) Shade(base Color, p, n Vec3) Color {
	n = n.Normalize()
	r := l.Ambient.Color.R * l.Ambient.Intensity
	g := l.Ambient.Color.G * l.Ambient.Intensity
	b := l.Ambient.Color.B * l.Ambient.Intensity
	for _, pl := range l.Points {
		lambert := n.Dot(pl.Position.Sub(p).Normalize())
		if lambert <= 0 {
			continue
		}
		k := lambert * pl.Intensity
		r += pl.Color.R * k
		g += pl.Color.G * k
		b += pl.Color.B * k
	}
	return Color{
		R: clamp01(base.R * r),
		G: clamp01(base.G * g),
		B: clamp01(base.B * b),
		A: base.A,
	}
}

// Highlight returns base lit by the rig at point p with normal n, but never
// darker than base in any channel.
func (l Lighting) Highlight(base Color, p, n Vec3) Color {
	lit := l.Shade(base, p, n)
	return Color{
		R: max(lit.R, base.R),
		G: max(lit.G, base.G),
		B: max(lit.B, base.B),
		A: base.A,
	}
}
