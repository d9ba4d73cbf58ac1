package birthday

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Key    string  `json:"key,omitempty"`
	Frames int     `json:"frames,omitempty"`
	State  string  `json:"state,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var scriptKeys = map[string]ebiten.Key{
	"space": ebiten.KeySpace,
	"enter": ebiten.KeyEnter,
	"r":     ebiten.KeyR,
}

// TestRunner sequences clicks, drags, wheel steps, key presses, waits,
// screenshots and state expectations across frames for automated runs of a
// Greeting. Attach via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Greeting via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "move", "drag", "wheel", "wait", "screenshot":
		case "key":
			if _, ok := scriptKeys[strings.ToLower(st.Key)]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		case "expect":
			if _, ok := parseState(st.State); !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown state %q", i, st.State)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func parseState(s string) (State, bool) {
	for st := StateWaiting; st <= StateComplete; st++ {
		if st.String() == strings.ToLower(s) {
			return st, true
		}
	}
	return 0, false
}

// SetTestRunner attaches a TestRunner to the greeting. The runner's step
// method is called at the start of every Greeting.Step.
func (g *Greeting) SetTestRunner(runner *TestRunner) {
	g.runner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the failed expectations joined, or nil.
func (r *TestRunner) Err() error {
	return errors.Join(r.failures...)
}

// step advances the test runner by one frame. Called from Greeting.Step.
func (r *TestRunner) step(g *Greeting) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if g.scene.PendingInput() > 0 {
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
	case "click":
		g.Click(st.X, st.Y)
	case "move":
		g.scene.InjectMove(st.X, st.Y)
	case "drag":
		g.scene.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		g.scene.InjectWheel(st.X, st.Y, st.DY)
	case "key":
		g.Press(scriptKeys[strings.ToLower(st.Key)])
	case "screenshot":
		g.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expect":
		want, _ := parseState(st.State)
		if got := g.ui.State(); got != want {
			r.failures = append(r.failures, fmt.Errorf("step %d: state = %s, want %s", r.cursor-1, got, want))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && g.scene.PendingInput() == 0 {
		r.done = true
	}
}
