package ebitenhost

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/phanxgames/knobs"
)

// targetWaitFrames is how long a step waits for its target item to appear
// before the runner records a failure and moves on.
const targetWaitFrames = 30

// testStep is a single action in a test script. Pointer actions take either
// screen coordinates or the id of an item submitted last frame (Target), in
// which case they aim at the item's center.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Target string  `json:"target,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Pixels float64 `json:"pixels,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Text   string  `json:"text,omitempty"`
	Key    string  `json:"key,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// stepAction checks a step when the script is loaded and performs it when
// its frame comes. run returns false when the target item is not on screen
// yet; the step is retried next frame.
type stepAction struct {
	check func(st *testStep) error
	run   func(r *TestRunner, c *Context, st *testStep) bool
}

var stepActions = map[string]stepAction{
	"screenshot": {run: func(_ *TestRunner, c *Context, st *testStep) bool {
		c.Screenshot(st.Label)
		return true
	}},
	"click": {run: atTarget(func(c *Context, _ *testStep, p knobs.Vec2) {
		c.InjectClick(p.X, p.Y)
	})},
	"doubleclick": {run: atTarget(func(c *Context, _ *testStep, p knobs.Vec2) {
		c.InjectDoubleClick(p.X, p.Y)
	})},
	"ctrlclick": {run: atTarget(func(c *Context, _ *testStep, p knobs.Vec2) {
		c.InjectClickWithModifiers(p.X, p.Y, ModCtrl)
	})},
	"drag": {run: func(_ *TestRunner, c *Context, st *testStep) bool {
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
		return true
	}},
	"turn": {
		check: func(st *testStep) error {
			if st.Target == "" {
				return errors.New("turn needs a target")
			}
			if st.Pixels == 0 {
				return errors.New("turn needs non-zero pixels")
			}
			return nil
		},
		run: atTarget(func(c *Context, st *testStep, p knobs.Vec2) {
			c.injectTurn(p, st.Pixels, max(st.Frames, 3))
		}),
	},
	"type": {
		check: func(st *testStep) error {
			if st.Text == "" {
				return errors.New("type needs text")
			}
			return nil
		},
		run: func(_ *TestRunner, c *Context, st *testStep) bool {
			c.InjectChars(st.Text)
			return true
		},
	},
	"key": {
		check: func(st *testStep) error {
			if _, ok := keyNames[strings.ToLower(st.Key)]; !ok {
				return fmt.Errorf("unknown key %q", st.Key)
			}
			return nil
		},
		run: func(_ *TestRunner, c *Context, st *testStep) bool {
			c.InjectKey(keyNames[strings.ToLower(st.Key)])
			return true
		},
	},
	"wait": {run: func(r *TestRunner, _ *Context, st *testStep) bool {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return true
	}},
}

// atTarget resolves the step's point, the center of its target item if it
// has one, and hands it to inject.
func atTarget(inject func(c *Context, st *testStep, p knobs.Vec2)) func(*TestRunner, *Context, *testStep) bool {
	return func(_ *TestRunner, c *Context, st *testStep) bool {
		p := knobs.Vec2{X: st.X, Y: st.Y}
		if st.Target != "" {
			r, ok := c.ItemRect(st.Target)
			if !ok {
				return false
			}
			p = r.Center()
		}
		inject(c, st, p)
		return true
	}
}

// TestRunner sequences injected input events and screenshots across frames
// for automated visual testing. Attach to a Context via SetTestRunner.
//
// Actions: click, doubleclick, ctrlclick, drag, turn, type, key, wait,
// screenshot. turn drags the target knob vertically by Pixels (positive
// turns it up).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	stalled   int
	done      bool
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Context via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("ebitenhost: parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("ebitenhost: parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		act, ok := stepActions[st.Action]
		if !ok {
			return nil, fmt.Errorf("ebitenhost: parse test script: step %d: unknown action %q", i, st.Action)
		}
		if act.check == nil {
			continue
		}
		if err := act.check(st); err != nil {
			return nil, fmt.Errorf("ebitenhost: parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the context. The runner advances
// from Update before input is read each frame.
func (c *Context) SetTestRunner(runner *TestRunner) {
	c.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Err returns the first step that failed, such as a target that never
// appeared. Failed steps are skipped.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the runner by one frame. Called from Context.Update, while
// the item rects of the previous frame are still in place.
func (r *TestRunner) step(c *Context) {
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

	st := &r.steps[r.cursor]
	if !stepActions[st.Action].run(r, c, st) {
		r.stalled++
		if r.stalled < targetWaitFrames {
			return
		}
		err := fmt.Errorf("ebitenhost: test step %d (%s): no item %q after %d frames",
			r.cursor, st.Action, st.Target, targetWaitFrames)
		knobs.Logger().Warn("ebitenhost: test step skipped", "err", err)
		if r.err == nil {
			r.err = err
		}
	}
	r.stalled = 0
	r.cursor++

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
