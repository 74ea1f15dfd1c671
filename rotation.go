package nebula

import "math"

// RotationState is the animation state of the rotating word group. Yaw
// accumulates with elapsed frame time and is never wrapped; pitch is not
// stored because it is a pure function of absolute time.
type RotationState struct {
	Yaw float64
}

// Advance adds delta seconds of yaw and returns the new yaw together with
// the pitch for the absolute time elapsed. Non-finite or negative deltas
// leave the yaw unchanged.
func (s *RotationState) Advance(delta, elapsed float64) (yaw, pitch float64) {
	if delta > 0 && isFinite(delta) {
		s.Yaw += delta * RotationSpeed
	}
	return s.Yaw, Pitch(elapsed)
}

// Pitch returns sin(elapsed * PitchFrequency) * PitchAmplitude.
func Pitch(elapsed float64) float64 {
	return math.Sin(elapsed*PitchFrequency) * PitchAmplitude
}
