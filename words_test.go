package nebula

import (
	"strings"
	"testing"
)

func TestDecodeWordsObject(t *testing.T) {
	in := `{
		"url": "https://example.com/a",
		"title": "A Story",
		"word_cloud": [
			{"word": "climate", "weight": 0.9},
			{"word": "policy", "weight": 0.4}
		]
	}`
	a, err := DecodeWords(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if a.URL != "https://example.com/a" || a.Title != "A Story" {
		t.Errorf("URL, Title = %q, %q", a.URL, a.Title)
	}
	want := []WeightedWord{{"climate", 0.9}, {"policy", 0.4}}
	if len(a.Words) != len(want) {
		t.Fatalf("len(Words) = %d, want %d", len(a.Words), len(want))
	}
	for i := range want {
		if a.Words[i] != want[i] {
			t.Errorf("Words[%d] = %v, want %v", i, a.Words[i], want[i])
		}
	}
}

func TestDecodeWordsLenient(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []WeightedWord
	}{
		{"bare array", `[{"word": "go", "weight": 1}]`, []WeightedWord{{"go", 1}}},
		{"missing word", `[{"weight": 0.5}]`, []WeightedWord{{"", 0.5}}},
		{"missing weight", `[{"word": "x"}]`, []WeightedWord{{"x", 0}}},
		{"null weight", `[{"word": "x", "weight": null}]`, []WeightedWord{{"x", 0}}},
		{"string weight", `[{"word": "x", "weight": "high"}]`, []WeightedWord{{"x", 0}}},
		{"out of range kept", `[{"word": "x", "weight": 3}]`, []WeightedWord{{"x", 3}}},
		{"non-object dropped", `[1, "a", {"word": "ok", "weight": 0.2}, null]`, []WeightedWord{{"ok", 0.2}}},
		{"empty object", `{}`, []WeightedWord{}},
		{"empty input", `  `, []WeightedWord{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := DecodeWords(strings.NewReader(tt.in))
			if err != nil {
				t.Fatalf("DecodeWords: %v", err)
			}
			if a.Words == nil {
				t.Fatal("Words should never be nil")
			}
			if len(a.Words) != len(tt.want) {
				t.Fatalf("Words = %v, want %v", a.Words, tt.want)
			}
			for i := range tt.want {
				if a.Words[i] != tt.want[i] {
					t.Errorf("Words[%d] = %v, want %v", i, a.Words[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecodeWordsMalformed(t *testing.T) {
	for _, in := range []string{"not json", `{"word_cloud": 5}`, `[1, 2`} {
		if _, err := DecodeWords(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeWords(%q) should fail", in)
		}
	}
}
