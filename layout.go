package nebula

import "math"

// WeightedWord is one keyword from an analysis result. Weight is expected in
// [0, 1] but any float is tolerated.
type WeightedWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// PositionedWord is a WeightedWord placed on the sphere. Weight holds the
// clamped value the size and color were derived from.
type PositionedWord struct {
	WeightedWord
	Index    int
	Position Vec3
	Hue      int
	Color    Color
	Size     float64
}

// goldenAzimuth is pi * (1 + sqrt(5)), the per-index azimuth increment.
var goldenAzimuth = math.Pi * (1 + math.Sqrt(5))

// Layout places words on a Fibonacci sphere of radius SphereRadius. The
// result has the same length and order as words. Layout is pure: the same
// input always yields identical output, and words is never modified.
func Layout(words []WeightedWord) []PositionedWord {
	if len(words) == 0 {
		return []PositionedWord{}
	}
	n := len(words)
	out := make([]PositionedWord, n)
	for i, w := range words {
		weight := ClampWeight(w.Weight)
		hue := HueForWeight(weight)
		out[i] = PositionedWord{
			WeightedWord: WeightedWord{Word: w.Word, Weight: weight},
			Index:        i,
			Position:     SpherePoint(i, n, SphereRadius),
			Hue:          hue,
			Color:        HSLColor(float64(hue), WordSaturation, WordLightness),
			Size:         SizeForWeight(weight),
		}
	}
	return out
}

// SpherePoint returns the position of point i of n on a Fibonacci sphere
// with the given radius. n must be at least 1 and i in [0, n).
//
//	phi   = acos(1 - 2(i+0.5)/n)   polar angle, equal-area bands
//	theta = pi(1+sqrt5)(i+0.5)     golden-angle azimuth
func SpherePoint(i, n int, radius float64) Vec3 {
	k := float64(i) + 0.5
	phi := math.Acos(clamp(1-2*k/float64(n), -1, 1))
	theta := goldenAzimuth * k

	sinPhi, cosPhi := math.Sincos(phi)
	sinTheta, cosTheta := math.Sincos(theta)
	return Vec3{
		X: radius * cosTheta * sinPhi,
		Y: radius * sinTheta * sinPhi,
		Z: radius * cosPhi,
	}
}

// ClampWeight maps any float into [0, 1]. NaN becomes 0.
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return 0
	}
	return clamp01(w)
}

// HueForWeight returns round(HueBase + w*HueRange) for a clamped weight.
func HueForWeight(w float64) int {
	return int(math.Round(HueBase + ClampWeight(w)*HueRange))
}

// SizeForWeight returns SizeBase + w*SizeRange for a clamped weight.
func SizeForWeight(w float64) float64 {
	return SizeBase + ClampWeight(w)*SizeRange
}
