package isoview

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action    string       `json:"action"`
	Label     string       `json:"label,omitempty"`
	X         int          `json:"x,omitempty"`
	Y         int          `json:"y,omitempty"`
	FromX     int          `json:"fromX,omitempty"`
	FromY     int          `json:"fromY,omitempty"`
	ToX       int          `json:"toX,omitempty"`
	ToY       int          `json:"toY,omitempty"`
	Frames    int          `json:"frames,omitempty"`
	Direction int          `json:"direction,omitempty"`
	Button    MouseButtons `json:"button,omitempty"`
	Mode      string       `json:"mode,omitempty"`
	Duration  float32      `json:"duration,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input events, view changes and screenshots
// across frames for automated visual testing. Attach to a Viewport via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// knownActions lists the actions a test script may use.
var knownActions = map[string]bool{
	"screenshot": true, "move": true, "press": true, "release": true,
	"click": true, "drag": true, "wheel": true, "rotate": true,
	"pan": true, "scroll": true, "mode": true, "wait": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Viewport via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "mode" {
			if _, err := parseMouseMode(st.Mode); err != nil {
				return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
			}
		}
		if (st.Action == "press" || st.Action == "release" || st.Action == "click" || st.Action == "drag") && st.Button == 0 {
			script.Steps[i].Button = ButtonLeft
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the viewport. The runner's step
// method is called from the game loop before processInput each frame.
func (v *Viewport) SetTestRunner(runner *TestRunner) {
	v.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(v *Viewport) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
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
		v.Screenshot(st.Label)
	case "move":
		v.InjectMove(st.X, st.Y)
	case "press":
		v.InjectPress(st.X, st.Y, st.Button)
	case "release":
		v.InjectRelease(st.X, st.Y, st.Button)
	case "click":
		v.InjectPress(st.X, st.Y, st.Button)
		v.InjectRelease(st.X, st.Y, st.Button)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames, st.Button)
	case "wheel":
		v.InjectWheel(st.X, st.Y, st.Direction)
	case "rotate":
		v.Rotate(st.Direction)
	case "pan":
		v.Pan(st.X, st.Y)
	case "scroll":
		v.ScrollToTile(st.X, st.Y, st.Duration)
	case "mode":
		mode, _ := parseMouseMode(st.Mode)
		v.SetMouseMode(mode)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(v.injectQueue) == 0 {
		r.done = true
	}
}
