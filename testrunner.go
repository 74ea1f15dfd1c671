package nebula

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action  string         `json:"action"`
	Label   string         `json:"label,omitempty"`
	X       float64        `json:"x,omitempty"`
	Y       float64        `json:"y,omitempty"`
	FromX   float64        `json:"fromX,omitempty"`
	FromY   float64        `json:"fromY,omitempty"`
	ToX     float64        `json:"toX,omitempty"`
	ToY     float64        `json:"toY,omitempty"`
	Frames  int            `json:"frames,omitempty"`
	Notches float64        `json:"notches,omitempty"`
	Words   []WeightedWord `json:"words,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"hover": true, "drag": true, "wheel": true,
	"wait": true, "screenshot": true, "words": true,
}

// TestRunner sequences injected input, word list changes and screenshots
// across frames for automated visual checks. Attach to a Container via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script, for example:
//
//	{"steps": [
//	  {"action": "wait", "frames": 30},
//	  {"action": "hover", "x": 400, "y": 300},
//	  {"action": "screenshot", "label": "hovered"},
//	  {"action": "drag", "fromX": 100, "fromY": 300, "toX": 500, "toY": 300, "frames": 20},
//	  {"action": "wheel", "notches": 3},
//	  {"action": "words", "words": [{"word": "go", "weight": 1}]}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("nebula: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("nebula: parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("nebula: parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Container.Update.
func (r *TestRunner) step(c *Container) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		c.Screenshot(st.Label)
	case "hover":
		c.InjectHover(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		c.InjectWheel(st.Notches)
	case "words":
		c.SetWords(st.Words)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
