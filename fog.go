package nebula

// Fog fades geometry toward Color as its view-space depth goes from Near to
// Far, using the same smoothstep falloff as three.js' linear Fog.
type Fog struct {
	Color Color
	Near  float64
	Far   float64
}

// DefaultFog returns the scene fog: background-colored, from FogNear to FogFar.
func DefaultFog() Fog {
	return Fog{Color: BackgroundColor, Near: FogNear, Far: FogFar}
}

// Factor returns how much of the fog color replaces a surface at depth,
// from 0 (no fog) to 1 (fully fogged).
func (f Fog) Factor(depth float64) float64 {
	return smoothstep(f.Near, f.Far, depth)
}

// Apply mixes c toward the fog color for the given depth. Alpha is kept.
func (f Fog) Apply(c Color, depth float64) Color {
	t := f.Factor(depth)
	if t == 0 {
		return c
	}
	out := c.Mix(f.Color, t)
	out.A = c.A
	return out
}
