package cartoon

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyScript is returned by LoadPlaybackScript for a script with no
// steps.
var ErrEmptyScript = errors.New("no steps")

// scriptStep is a single action in a playback script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	At     float64 `json:"at,omitempty"` // seconds, for seek
	Frames int     `json:"frames,omitempty"`
}

// playbackScript is the top-level JSON structure of a playback script.
type playbackScript struct {
	Steps []scriptStep `json:"steps"`
}

// PlaybackScript drives a Player through a fixed sequence of transport
// actions, one action per host frame, for exports and automated tests.
//
// Actions: play, pause, resume, toggle, stop, seek (at, in seconds), back,
// advance (wait frames while playback runs) and snapshot (label).
type PlaybackScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadPlaybackScript parses a JSON playback script.
func LoadPlaybackScript(jsonData []byte) (*PlaybackScript, error) {
	var script playbackScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse playback script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse playback script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		if !knownAction(st.Action) {
			return nil, fmt.Errorf("parse playback script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &PlaybackScript{steps: script.Steps}, nil
}

func knownAction(a string) bool {
	switch a {
	case "play", "pause", "resume", "toggle", "stop", "seek", "back", "advance", "snapshot":
		return true
	}
	return false
}

// Done reports whether every step has been executed.
func (r *PlaybackScript) Done() bool {
	return r.done
}

// Step executes at most one action against p. Call it once per host frame,
// before the frame's scheduled ticks run. snap is called for snapshot
// actions and may be nil.
func (r *PlaybackScript) Step(p *Player, snap func(label string)) {
	if r.done {
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
	case "play":
		p.Play()
	case "pause":
		p.Pause()
	case "resume":
		p.Resume()
	case "toggle":
		p.TogglePlay()
	case "stop":
		p.Stop()
	case "seek":
		p.SetTime(time.Duration(st.At * float64(time.Second)))
	case "back":
		p.Back15()
	case "advance":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		if snap != nil {
			snap(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
