package mondrian

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a playback script.
type scriptStep struct {
	Action string `json:"action"`
	Frames int    `json:"frames,omitempty"`
	Path   string `json:"path,omitempty"`
}

// scriptFile is the top-level JSON structure for a playback script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences press, release, wait, and export actions across frames
// for deterministic headless playback. Supported actions:
//
//	{"action": "press"}
//	{"action": "release"}
//	{"action": "wait", "frames": 30}
//	{"action": "export", "path": "frame.png"}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON playback script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for _, st := range file.Steps {
		switch st.Action {
		case "press", "release", "wait", "export":
		default:
			return nil, fmt.Errorf("parse script: unknown action %q", st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *Script) Done() bool {
	return r.done
}

// Step executes at most one script action against the composition at the
// given time. Call once per frame; wait steps consume the requested number
// of frames before the next action fires.
func (r *Script) Step(comp *Composition, now float64) error {
	if r.done {
		return nil
	}
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		comp.Randomize(now)
	case "release":
		comp.Release(now)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "export":
		if err := ExportPNG(st.Path, comp.Frame(now), comp.Config()); err != nil {
			return err
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
	return nil
}

// Play runs the script to completion against a virtual clock ticking at the
// given frame rate, then keeps ticking until any in-flight transition has
// settled. fps values <= 0 default to 60.
func Play(comp *Composition, s *Script, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	now := 0.0
	for !s.Done() {
		if err := s.Step(comp, now); err != nil {
			return err
		}
		comp.Frame(now)
		now += dt
	}
	for comp.Mode() == ModeTransitioning {
		comp.Frame(now)
		now += dt
	}
	return nil
}
