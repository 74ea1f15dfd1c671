package nebula

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Analysis is an article analysis result: the source article and its
// weighted keywords.
type Analysis struct {
	URL   string         `json:"url"`
	Title string         `json:"title"`
	Words []WeightedWord `json:"word_cloud"`
}

// DecodeWords reads an analysis document from r. Both the full object
// {"url", "title", "word_cloud": [...]} and a bare array of
// {"word", "weight"} entries are accepted.
//
// Entries are decoded leniently: a missing or non-string word becomes "",
// a missing, null or non-numeric weight becomes 0, and entries that are not
// objects are dropped. Weights outside [0, 1] are kept as-is.
func DecodeWords(r io.Reader) (Analysis, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Analysis{}, fmt.Errorf("nebula: read words: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Analysis{Words: []WeightedWord{}}, nil
	}

	var raw struct {
		URL   string            `json:"url"`
		Title string            `json:"title"`
		Words []json.RawMessage `json:"word_cloud"`
	}
	if data[0] == '[' {
		if err := json.Unmarshal(data, &raw.Words); err != nil {
			return Analysis{}, fmt.Errorf("nebula: decode words: %w", err)
		}
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return Analysis{}, fmt.Errorf("nebula: decode words: %w", err)
	}

	out := Analysis{URL: raw.URL, Title: raw.Title, Words: make([]WeightedWord, 0, len(raw.Words))}
	for _, entry := range raw.Words {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil || fields == nil {
			continue
		}
		var w WeightedWord
		_ = json.Unmarshal(fields["word"], &w.Word)
		_ = json.Unmarshal(fields["weight"], &w.Weight)
		out.Words = append(out.Words, w)
	}
	return out, nil
}
