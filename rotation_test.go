package nebula

import (
	"math"
	"testing"
)

func TestRotationAdvance(t *testing.T) {
	var s RotationState
	step := 1.0 / 60
	elapsed := 0.0
	for range 600 {
		elapsed += step
		s.Advance(step, elapsed)
	}
	// 10 seconds at RotationSpeed rad/s.
	if want := 10 * RotationSpeed; !approxEqual(s.Yaw, want, 1e-9) {
		t.Errorf("Yaw = %v, want %v", s.Yaw, want)
	}
}

func TestRotationYawUnbounded(t *testing.T) {
	s := RotationState{Yaw: 100 * math.Pi}
	yaw, _ := s.Advance(1, 1)
	if want := 100*math.Pi + RotationSpeed; yaw != want {
		t.Errorf("yaw = %v, want %v (never wrapped)", yaw, want)
	}
}

func TestRotationIgnoresBadDelta(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
	}{
		{"zero", 0},
		{"negative", -1},
		{"NaN", math.NaN()},
		{"+Inf", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := RotationState{Yaw: 1}
			s.Advance(tt.delta, 5)
			if s.Yaw != 1 {
				t.Errorf("Yaw = %v, want 1", s.Yaw)
			}
		})
	}
}

func TestPitch(t *testing.T) {
	tests := []struct {
		elapsed float64
		want    float64
	}{
		{0, 0},
		{math.Pi / 2 / PitchFrequency, PitchAmplitude},
		{3 * math.Pi / 2 / PitchFrequency, -PitchAmplitude},
	}
	for _, tt := range tests {
		if got := Pitch(tt.elapsed); !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("Pitch(%v) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
	for e := 0.0; e < 100; e += 0.37 {
		if p := Pitch(e); math.Abs(p) > PitchAmplitude {
			t.Fatalf("Pitch(%v) = %v exceeds amplitude", e, p)
		}
	}
}
