package nebula

import (
	"cmp"
	"fmt"
	"slices"
	"testing"
)

// benchWords returns n words with weights spread evenly over [0, 1].
func benchWords(n int) []WeightedWord {
	words := make([]WeightedWord, n)
	for i := range words {
		w := 0.0
		if n > 1 {
			w = float64(i) / float64(n-1)
		}
		words[i] = WeightedWord{Word: fmt.Sprintf("word%04d", i), Weight: w}
	}
	return words
}

// setupBenchContainer mounts a Container with n words, a box measurer and a
// fixed clock so no font or window is needed.
func setupBenchContainer(b *testing.B, n int) *Container {
	b.Helper()
	c := NewContainer(1280, 720)
	c.SetMeasurer(boxMeasurer{w: 80, h: 30})
	c.SetInputSource(nil)
	c.SetClock(&FixedStepClock{Step: testFrameStep})
	c.SetWords(benchWords(n))
	if err := c.Mount(); err != nil {
		b.Fatalf("Mount: %v", err)
	}
	return c
}

// --- Layout ---

func BenchmarkLayout(b *testing.B) {
	for _, n := range []int{16, 100, 1000} {
		words := benchWords(n)
		b.Run(fmt.Sprintf("%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = Layout(words)
			}
		})
	}
}

// --- Frame ---

func BenchmarkUpdate_100Words(b *testing.B) {
	c := setupBenchContainer(b, 100)
	_ = c.Update() // warmup

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := c.Update(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildCommands_100Words(b *testing.B) {
	c := setupBenchContainer(b, 100)
	_ = c.Update()
	c.BuildCommands() // warmup grows the command buffer

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.BuildCommands()
	}
}

func BenchmarkBuildCommands_Rotating(b *testing.B) {
	c := setupBenchContainer(b, 100)
	_ = c.Update()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		// Every frame dirties the whole tree via the group rotation.
		_ = c.Update()
		c.BuildCommands()
	}
}

// --- Transform ---

func BenchmarkTransform_1000Dirty(b *testing.B) {
	d := NewDirector(Rect{Width: 1280, Height: 720})
	d.SetWords(benchWords(1000))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Root().MarkDirty()
		d.refreshTransforms()
	}
}

func BenchmarkTransform_1000Clean(b *testing.B) {
	d := NewDirector(Rect{Width: 1280, Height: 720})
	d.SetWords(benchWords(1000))
	d.refreshTransforms()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.refreshTransforms()
	}
}

// --- Command sort ---

func BenchmarkCommandSort_1000(b *testing.B) {
	c := setupBenchContainer(b, 1000)
	cmds := c.BuildCommands()
	buf := make([]RenderCommand, len(cmds))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, cmds)
		slices.SortStableFunc(buf, func(a, b RenderCommand) int {
			return cmp.Compare(b.Depth, a.Depth)
		})
	}
}

// --- Hit testing ---

func BenchmarkHitTest_1000Words(b *testing.B) {
	c := setupBenchContainer(b, 1000)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c.hitTest(640, 360)
	}
}

// --- Sparkles ---

func BenchmarkSparkles_Update(b *testing.B) {
	f := NewSparkleField(DefaultSparkleConfig())

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f.update(testFrameStep)
	}
}
