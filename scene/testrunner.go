package scene

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action" yaml:"action"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	X      float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Frames int     `json:"frames,omitempty" yaml:"frames,omitempty"`
}

// testScript is the top-level structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps" yaml:"steps"`
}

// Script actions.
const (
	actionMove       = "move"
	actionPress      = "press"
	actionRelease    = "release"
	actionClick      = "click"
	actionWait       = "wait"
	actionScreenshot = "screenshot"
)

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return newTestRunner(script)
}

// LoadTestScriptYAML parses a YAML test script with the same shape as the
// JSON form.
func LoadTestScriptYAML(yamlData []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(yamlData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	return newTestRunner(script)
}

// LoadTestScriptFile reads a script from disk. Files ending in .yaml or .yml
// are parsed as YAML; anything else as JSON.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadTestScriptYAML(data)
	default:
		return LoadTestScript(data)
	}
}

func newTestRunner(script testScript) (*TestRunner, error) {
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case actionMove, actionPress, actionRelease, actionClick, actionWait, actionScreenshot:
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Scene.StepScript
// before the pointer is polled.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if s.input.Pending() > 0 {
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
	case actionScreenshot:
		s.Screenshot(st.Label)
	case actionMove:
		s.input.InjectMove(st.X, st.Y)
	case actionPress:
		s.input.InjectPress(st.X, st.Y)
	case actionRelease:
		s.input.InjectRelease(st.X, st.Y)
	case actionClick:
		s.input.InjectClick(st.X, st.Y)
	case actionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
