package nebula

import (
	"math"
	"math/rand/v2"
)

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Random returns a float64 in [Min, Max] drawn from r.
func (rg Range) Random(r *rand.Rand) float64 {
	if rg.Min == rg.Max {
		return rg.Min
	}
	return rg.Min + r.Float64()*(rg.Max-rg.Min)
}

// sparkle holds per-particle state. Unexported; managed by SparkleField.
type sparkle struct {
	base  Vec3
	phase float64
	scale float64
	drift Vec3 // per-axis drift amplitude
}

// SparkleField is a fixed pool of decorative particles scattered in a cube
// around the origin. Particles drift on small periodic paths and twinkle;
// they are never spawned or killed, so the count is constant.
type SparkleField struct {
	Color Color
	// Size is the base particle radius in pixels.
	Size float64
	// Speed scales drift and twinkle frequency.
	Speed float64

	particles []sparkle
	elapsed   float64
}

// SparkleConfig controls how a SparkleField is seeded.
type SparkleConfig struct {
	Count int
	// Scale is the edge length of the cube particles are spread over.
	Scale float64
	Speed float64
	Size  float64
	Color Color
	// Seed makes placement reproducible.
	Seed uint64
}

// DefaultSparkleConfig returns the atmosphere used by the Director.
func DefaultSparkleConfig() SparkleConfig {
	return SparkleConfig{
		Count: ParticleCount,
		Scale: SparkleScale,
		Speed: SparkleSpeed,
		Size:  SparkleSize,
		Color: SparkleColor,
		Seed:  0x5eed,
	}
}

// NewSparkleField creates a field with cfg.Count particles. A non-positive
// count yields an empty field.
func NewSparkleField(cfg SparkleConfig) *SparkleField {
	count := max(cfg.Count, 0)
	r := rand.New(rand.NewPCG(cfg.Seed, uint64(count)))
	half := cfg.Scale / 2
	spread := Range{-half, half}
	scales := Range{0.5, 1}
	drifts := Range{0.1, 0.4}

	f := &SparkleField{
		Color:     cfg.Color,
		Size:      cfg.Size,
		Speed:     cfg.Speed,
		particles: make([]sparkle, count),
	}
	for i := range f.particles {
		f.particles[i] = sparkle{
			base:  Vec3{spread.Random(r), spread.Random(r), spread.Random(r)},
			phase: r.Float64() * 2 * math.Pi,
			scale: scales.Random(r),
			drift: Vec3{drifts.Random(r), drifts.Random(r), drifts.Random(r)},
		}
	}
	return f
}

// Len returns the number of particles.
func (f *SparkleField) Len() int {
	return len(f.particles)
}

// update advances the field's clock by dt seconds.
func (f *SparkleField) update(dt float64) {
	f.elapsed += dt
}

// Particle returns the current local position, opacity and radius (pixels at
// unit scale) of particle i.
func (f *SparkleField) Particle(i int) (pos Vec3, alpha, size float64) {
	p := &f.particles[i]
	t := f.elapsed * f.Speed
	pos = Vec3{
		X: p.base.X + math.Sin(t+p.phase)*p.drift.X,
		Y: p.base.Y + math.Cos(t*0.8+p.phase*1.3)*p.drift.Y,
		Z: p.base.Z + math.Sin(t*0.6+p.phase*0.7)*p.drift.Z,
	}
	alpha = 0.35 + 0.65*(0.5+0.5*math.Sin(t*4+p.phase))
	return pos, alpha, f.Size * p.scale
}

// updateSparkles walks the tree advancing every sparkle field by dt seconds.
func updateSparkles(n *Node, dt float64) {
	if n.Type == NodeTypeSparkles && n.Sparkles != nil {
		n.Sparkles.update(dt)
	}
	for _, child := range n.children {
		updateSparkles(child, dt)
	}
}
