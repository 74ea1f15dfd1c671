package nebula

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Measurer reports the pixel extent of a string rendered at a pixel size.
// Hit testing uses it to size each label's pointer rectangle.
type Measurer interface {
	Measure(content string, pixelSize float64) (width, height float64)
}

// Font wraps an Ebitengine text/v2 face source. Faces are created per draw
// at the label's projected pixel size.
type Font struct {
	source *text.GoTextFaceSource
}

// LoadFont parses TrueType/OpenType data.
func LoadFont(ttfData []byte) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("nebula: failed to parse font data: %w", err)
	}
	return &Font{source: source}, nil
}

var defaultFont = sync.OnceValues(func() (*Font, error) {
	return LoadFont(goregular.TTF)
})

// DefaultFont returns the embedded Go Regular font, parsed once.
func DefaultFont() (*Font, error) {
	return defaultFont()
}

// Face returns a face for the given pixel size.
func (f *Font) Face(pixelSize float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.source, Size: pixelSize}
}

// lineHeight returns the baseline-to-baseline distance of face.
func lineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Measure returns the width and height of content at pixelSize.
func (f *Font) Measure(content string, pixelSize float64) (width, height float64) {
	if pixelSize <= 0 || content == "" {
		return 0, 0
	}
	face := f.Face(pixelSize)
	return text.Measure(content, face, lineHeight(face))
}
