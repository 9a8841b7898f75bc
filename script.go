package lantern

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a camera script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// cameraScript is the top-level JSON structure for a camera script.
type cameraScript struct {
	Steps []scriptStep `json:"steps"`
}

// Shooter captures labeled screenshots. *Canvas implements it.
type Shooter interface {
	Screenshot(label string)
}

// CameraScript is a State that drives a Camera through a fixed sequence of
// pans, zooms and screenshots, one step per tick. It is meant for automated
// visual checks: run a script, compare the screenshots.
//
// Script format:
//
//	{"steps": [
//	  {"action": "focus", "x": 200, "y": 150},
//	  {"action": "pan", "x": 10, "y": 0},
//	  {"action": "zoomIn"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "screenshot", "label": "zoomed"}
//	]}
type CameraScript struct {
	BaseState

	// Camera is the camera the steps act on.
	Camera *Camera
	// Shooter receives screenshot steps. Without one they are skipped.
	Shooter Shooter
	// Draw, if set, is called every tick after the step has been applied.
	Draw func(cam *Camera)
	// Next is requested once the script is done. Without one the loop is
	// stopped instead.
	Next State

	loop      *Loop
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadCameraScript parses a JSON camera script for cam.
func LoadCameraScript(jsonData []byte, cam *Camera) (*CameraScript, error) {
	var script cameraScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("lantern: parse camera script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("lantern: parse camera script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "pan", "focus", "zoomIn", "zoomOut", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("lantern: parse camera script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &CameraScript{Camera: cam, steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *CameraScript) Done() bool {
	return s.done
}

// Setup implements State. Re-entering a script restarts it.
func (s *CameraScript) Setup(loop *Loop) {
	s.loop = loop
	s.cursor = 0
	s.waitCount = 0
	s.done = false
}

// Tick implements State.
func (s *CameraScript) Tick(next func(State)) {
	s.step()
	if s.Draw != nil {
		s.Draw(s.Camera)
	}
	if !s.done {
		return
	}
	if s.Next != nil {
		next(s.Next)
	} else if s.loop != nil {
		s.loop.Stop()
	}
}

// step advances the script by one frame.
func (s *CameraScript) step() {
	if s.done {
		return
	}
	// Count down wait frames.
	if s.waitCount > 0 {
		s.waitCount--
		s.checkDone()
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "pan":
		s.Camera.Pan(st.X, st.Y)
	case "focus":
		s.Camera.SetFocus(Vec{st.X, st.Y})
	case "zoomIn":
		s.Camera.AdjustZoom(false)
	case "zoomOut":
		s.Camera.AdjustZoom(true)
	case "screenshot":
		if s.Shooter != nil {
			s.Shooter.Screenshot(st.Label)
		}
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
	s.checkDone()
}

func (s *CameraScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 {
		s.done = true
	}
}
