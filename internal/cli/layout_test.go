package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

const sampleAnalysis = `{
  "url": "https://example.com/story",
  "title": "Example Story",
  "word_cloud": [
    {"word": "climate", "weight": 0.9},
    {"word": "policy", "weight": 0.4},
    {"word": "energy", "weight": 0.1}
  ]
}`

func runRoot(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLayoutJSON(t *testing.T) {
	path := writeFile(t, "words.json", sampleAnalysis)
	out, err := runRoot(t, "", "layout", "--json", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	var doc layoutDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if doc.Title != "Example Story" {
		t.Errorf("Title = %q, want Example Story", doc.Title)
	}
	if len(doc.Words) != 3 {
		t.Fatalf("len(Words) = %d, want 3", len(doc.Words))
	}
	wantHues := []int{318, 258, 222}
	for i, w := range doc.Words {
		if w.Index != i {
			t.Errorf("word %d: Index = %d", i, w.Index)
		}
		if w.Hue != wantHues[i] {
			t.Errorf("word %d: Hue = %d, want %d", i, w.Hue, wantHues[i])
		}
		r := math.Sqrt(w.Position[0]*w.Position[0] + w.Position[1]*w.Position[1] + w.Position[2]*w.Position[2])
		if math.Abs(r-6) > 1e-9 {
			t.Errorf("word %d: radius = %v, want 6", i, r)
		}
		if !strings.HasPrefix(w.Color, "#") {
			t.Errorf("word %d: Color = %q, want hex", i, w.Color)
		}
	}
}

func TestLayoutStdin(t *testing.T) {
	out, err := runRoot(t, `[{"word": "go", "weight": 1}]`, "layout", "--json")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	var doc layoutDoc
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Words) != 1 || doc.Words[0].Word != "go" || doc.Words[0].Hue != 330 {
		t.Errorf("Words = %+v", doc.Words)
	}
}

func TestLayoutTable(t *testing.T) {
	path := writeFile(t, "words.json", sampleAnalysis)
	out, err := runRoot(t, "", "layout", path)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	for _, want := range []string{"Example Story", "climate", "policy", "energy", "Hue"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	out, err := runRoot(t, `{"word_cloud": []}`, "layout")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if !strings.Contains(out, "Analyze an article to begin") {
		t.Errorf("output = %q, want placeholder", out)
	}
}

func TestLayoutBadInput(t *testing.T) {
	if _, err := runRoot(t, "not json", "layout"); err == nil {
		t.Error("expected error for malformed input")
	}
}

func TestReadWordsEmptyPath(t *testing.T) {
	a, err := readWords(strings.NewReader("ignored"), "")
	if err != nil {
		t.Fatal(err)
	}
	if a.Words == nil || len(a.Words) != 0 {
		t.Errorf("Words = %#v, want empty non-nil", a.Words)
	}
}
