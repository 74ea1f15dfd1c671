package nebula

import (
	"testing"
)

var testViewport = Rect{Width: 800, Height: 600}

func sampleWords() []WeightedWord {
	return []WeightedWord{
		{Word: "climate", Weight: 0.9},
		{Word: "policy", Weight: 0.4},
		{Word: "energy", Weight: 0.1},
	}
}

func TestDirectorPlaceholder(t *testing.T) {
	d := NewDirector(testViewport)
	if !d.PlaceholderVisible() {
		t.Error("placeholder should be visible with no words")
	}
	if len(d.Words()) != 0 {
		t.Errorf("len(Words) = %d, want 0", len(d.Words()))
	}

	d.SetWords(sampleWords())
	if d.PlaceholderVisible() {
		t.Error("placeholder should hide once words are set")
	}
	if len(d.Words()) != 3 || len(d.Positioned()) != 3 {
		t.Errorf("len(Words), len(Positioned) = %d, %d; want 3, 3", len(d.Words()), len(d.Positioned()))
	}

	d.SetWords(nil)
	if !d.PlaceholderVisible() {
		t.Error("placeholder should come back for an empty list")
	}
}

func TestDirectorUpdateRotation(t *testing.T) {
	d := NewDirector(testViewport)
	d.SetWords(sampleWords())

	step := 1.0 / 60
	elapsed := 0.0
	for range 120 {
		elapsed += step
		d.Update(step, elapsed)
	}

	rot := d.GroupRotation()
	if want := 2 * RotationSpeed; !approxEqual(rot.Y, want, 1e-9) {
		t.Errorf("yaw = %v, want %v", rot.Y, want)
	}
	if want := Pitch(elapsed); !approxEqual(rot.X, want, 1e-12) {
		t.Errorf("pitch = %v, want %v", rot.X, want)
	}
	if rot.Z != 0 {
		t.Errorf("roll = %v, want 0", rot.Z)
	}
	if d.Rotation().Yaw != rot.Y {
		t.Errorf("Rotation().Yaw = %v, want %v", d.Rotation().Yaw, rot.Y)
	}
}

func TestDirectorWordsRotateWithGroup(t *testing.T) {
	d := NewDirector(testViewport)
	d.SetWords(sampleWords())
	before := d.Words()[0].Label().WorldPosition()

	d.Update(2, 2)
	after := d.Words()[0].Label().WorldPosition()
	if before.Sub(after).Len() < 1e-3 {
		t.Error("word world position should move as the group rotates")
	}
	// Rotation and float motion keep words near the sphere.
	if r := after.Len(); r < SphereRadius-1 || r > SphereRadius+1 {
		t.Errorf("|world position| = %v, want near %v", r, SphereRadius)
	}
}

func TestDirectorSetWordsResetsHover(t *testing.T) {
	d := NewDirector(testViewport)
	d.SetWords(sampleWords())
	d.Words()[1].PointerEnter(0)

	d.SetWords(sampleWords())
	for i, wn := range d.Words() {
		if wn.Hovered() {
			t.Errorf("word %d hovered after rebuild", i)
		}
		if wn.Label().Label.Size != wn.Word().Size {
			t.Errorf("word %d: Size = %v, want %v", i, wn.Label().Label.Size, wn.Word().Size)
		}
	}
}

func TestDirectorSetWordsKeepsRotation(t *testing.T) {
	d := NewDirector(testViewport)
	d.SetWords(sampleWords())
	d.Update(1, 1)
	yaw := d.Rotation().Yaw

	d.SetWords(sampleWords()[:1])
	if d.Rotation().Yaw != yaw {
		t.Errorf("Yaw = %v after SetWords, want %v", d.Rotation().Yaw, yaw)
	}
}

func TestDirectorAtmosphere(t *testing.T) {
	d := NewDirector(testViewport)
	if n := d.Sparkles().Len(); n != ParticleCount {
		t.Errorf("sparkle count = %d, want %d", n, ParticleCount)
	}

	l := d.Lighting()
	if l.Ambient.Intensity != AmbientIntensity {
		t.Errorf("ambient = %v, want %v", l.Ambient.Intensity, AmbientIntensity)
	}
	if len(l.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(l.Points))
	}
	if l.Points[0].Position != KeyLightPosition || l.Points[1].Position != AccentLightPosition {
		t.Errorf("light positions = %v, %v", l.Points[0].Position, l.Points[1].Position)
	}

	cam := d.Camera()
	if cam.Distance != CameraDistance || cam.FOV != CameraFOV {
		t.Errorf("camera distance, fov = %v, %v; want %v, %v", cam.Distance, cam.FOV, CameraDistance, CameraFOV)
	}
}

func TestDirectorDispose(t *testing.T) {
	d := NewDirector(testViewport)
	d.SetWords(sampleWords())
	label := d.Words()[0].Label()
	d.Dispose()
	if !label.IsDisposed() || !d.Root().IsDisposed() {
		t.Error("Dispose should dispose the whole tree")
	}
	if d.Words() != nil {
		t.Error("Words should be nil after Dispose")
	}
}
