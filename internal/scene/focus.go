package scene

import (
	"github.com/jask/cafferot/internal/layout"
	"github.com/jask/cafferot/internal/viewport"
)

// FocusZoom is the zoom a focused café is shown at.
const FocusZoom = 2.8

// FocusTarget returns the camera that puts slot at the centre of canvas
// under FocusZoom. It reports false when the canvas is not measured.
func FocusTarget(slot layout.Slot, canvas Size) (viewport.State, bool) {
	if !canvas.Measured() {
		return viewport.State{}, false
	}
	x, y := slot.Project(canvas.W, canvas.H)
	return viewport.State{
		PanX: canvas.W/2 - x*FocusZoom,
		PanY: canvas.H/2 - y*FocusZoom,
		Zoom: FocusZoom,
	}, true
}

// click toggles focus on id: the selected café unfocuses, any other café
// becomes the focus target.
func (s *Session) click(id string) Outcome {
	p, ok := s.placement(id)
	if !ok {
		return Outcome{}
	}
	if s.selected == id {
		return s.clearSelection()
	}
	target, ok := FocusTarget(p.Slot, s.canvas)
	if !ok {
		return Outcome{}
	}
	s.view.SetAbsolute(target.PanX, target.PanY, target.Zoom)
	s.selected = id
	s.cause = viewport.CauseFocus
	c := p.Cafe
	if s.cb.OnEntitySelected != nil {
		s.cb.OnEntitySelected(c)
	}
	return Outcome{Cause: viewport.CauseFocus, Selected: &c}
}

func (s *Session) clearSelection() Outcome {
	cleared := s.selected != ""
	s.selected = ""
	s.view.Reset()
	s.cause = viewport.CauseReset
	return Outcome{Cause: viewport.CauseReset, Cleared: cleared}
}
