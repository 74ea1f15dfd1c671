package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/nebula"
)

// readWords loads an analysis document. An empty path yields an empty word
// list; "-" reads from stdin.
func readWords(stdin io.Reader, path string) (nebula.Analysis, error) {
	switch path {
	case "":
		return nebula.Analysis{Words: []nebula.WeightedWord{}}, nil
	case "-":
		return nebula.DecodeWords(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nebula.Analysis{}, fmt.Errorf("open words: %w", err)
	}
	defer f.Close()
	a, err := nebula.DecodeWords(f)
	if err != nil {
		return nebula.Analysis{}, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}
