package scene

import (
	"math"

	"github.com/jask/cafferot/internal/viewport"
)

// WheelSensitivity converts wheel deltaY to zoom delta.
const WheelSensitivity = 0.001

// Apply processes one event and returns what changed.
func (s *Session) Apply(ev Event) Outcome {
	switch e := ev.(type) {
	case WheelEvent:
		return s.wheel(e)
	case PointerDownEvent:
		return s.pointerDown(e)
	case PointerMoveEvent:
		return s.pointerMove(e)
	case PointerUpEvent:
		s.gesture = panGesture{}
	case PointerLeaveEvent:
		s.gesture = panGesture{}
		return Outcome{HoverChanged: s.setHover("")}
	case KeyEvent:
		if isEscape(e.Key) && s.selected != "" {
			return s.clearSelection()
		}
	case SelectEntity:
		return s.click(e.ID)
	case BackEvent:
		if s.selected != "" {
			return s.clearSelection()
		}
	case ResetEvent:
		return s.clearSelection()
	case NavigateEvent:
		if s.cb.OnNavigateAway != nil {
			s.cb.OnNavigateAway(e.Target)
		}
		return Outcome{Navigate: e.Target}
	}
	return Outcome{}
}

func (s *Session) wheel(e WheelEvent) Outcome {
	if !finite(e.DeltaY) {
		return Outcome{}
	}
	before := s.view.State().Zoom
	s.view.ZoomBy(-e.DeltaY * WheelSensitivity)
	if s.view.State().Zoom == before {
		return Outcome{}
	}
	s.cause = viewport.CauseWheel
	return Outcome{Cause: viewport.CauseWheel}
}

// pointerDown routes a press on a café to selection; anything else with the
// primary button anchors a pan gesture.
func (s *Session) pointerDown(e PointerDownEvent) Outcome {
	if e.Button != ButtonPrimary || !finite(e.X, e.Y) {
		return Outcome{}
	}
	if id, ok := s.HitTest(e.X, e.Y); ok {
		return s.click(id)
	}
	view := s.view.State()
	s.gesture = panGesture{active: true, anchorX: e.X - view.PanX, anchorY: e.Y - view.PanY}
	return Outcome{}
}

func (s *Session) pointerMove(e PointerMoveEvent) Outcome {
	if !finite(e.X, e.Y) {
		return Outcome{}
	}
	var out Outcome
	if s.gesture.active {
		s.view.PanTo(e.X-s.gesture.anchorX, e.Y-s.gesture.anchorY)
		s.cause = viewport.CauseDrag
		out.Cause = viewport.CauseDrag
	}
	id, _ := s.HitTest(e.X, e.Y)
	out.HoverChanged = s.setHover(id)
	return out
}

func (s *Session) setHover(id string) bool {
	if s.hovered == id {
		return false
	}
	s.hovered = id
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
