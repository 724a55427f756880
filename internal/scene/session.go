// Package scene owns the interactive state of one café map view: camera,
// selection, hover and the pan gesture. All changes go through Apply, one
// event at a time, on the caller's goroutine.
package scene

import (
	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/layout"
	"github.com/jask/cafferot/internal/present"
	"github.com/jask/cafferot/internal/viewport"
)

// Size is the measured canvas in screen units.
type Size struct {
	W, H float64
}

// Measured reports whether the canvas has been laid out.
func (s Size) Measured() bool { return s.W > 0 && s.H > 0 }

// Placement is a café assigned to a layout slot.
type Placement struct {
	Cafe      cafe.Cafe
	SlotIndex int
	Slot      layout.Slot
}

// Callbacks are invoked synchronously from Apply.
type Callbacks struct {
	// OnEntitySelected fires once per transition into focus.
	OnEntitySelected func(cafe.Cafe)
	// OnNavigateAway fires for NavigateEvent.
	OnNavigateAway func(target string)
}

type Option func(*Session)

func WithCallbacks(cb Callbacks) Option {
	return func(s *Session) { s.cb = cb }
}

func WithCanvas(w, h float64) Option {
	return func(s *Session) { s.canvas = Size{W: w, H: h} }
}

type panGesture struct {
	active           bool
	anchorX, anchorY float64
}

// Session is the state of one map view. It is not safe for concurrent use.
type Session struct {
	view     *viewport.Viewport
	placed   []Placement
	hidden   int
	selected string
	hovered  string
	gesture  panGesture
	canvas   Size
	cause    viewport.Cause
	cb       Callbacks
}

// NewSession places primary at the centre and nearby cafés in list order.
func NewSession(primary cafe.Cafe, nearby []cafe.Cafe, opts ...Option) *Session {
	s := &Session{view: viewport.New()}
	for _, opt := range opts {
		opt(s)
	}
	s.SetEntities(primary, nearby)
	return s
}

// SetEntities replaces the rendered cafés. Cafés beyond the last slot are
// counted in Hidden and never placed. Selection survives; hover is dropped
// when its café is gone.
func (s *Session) SetEntities(primary cafe.Cafe, nearby []cafe.Cafe) {
	n := len(nearby)
	if n > layout.Capacity() {
		n = layout.Capacity()
	}
	placed := make([]Placement, 0, n+1)
	placed = append(placed, Placement{Cafe: primary, SlotIndex: 0, Slot: layout.Center})
	for i := 0; i < n; i++ {
		placed = append(placed, Placement{Cafe: nearby[i], SlotIndex: i + 1, Slot: layout.MustSlotAt(i + 1)})
	}
	s.placed = placed
	s.hidden = len(nearby) - n
	if _, ok := s.placement(s.hovered); !ok {
		s.hovered = ""
	}
}

// Resize records the canvas size used for focus and hit testing.
func (s *Session) Resize(w, h float64) {
	s.canvas = Size{W: w, H: h}
}

func (s *Session) Canvas() Size { return s.canvas }

// Viewport returns the logical camera.
func (s *Session) Viewport() viewport.State { return s.view.State() }

// Selected returns the selected café id, or "".
func (s *Session) Selected() string { return s.selected }

// SelectedCafe returns the selected café when it is still placed.
func (s *Session) SelectedCafe() (cafe.Cafe, bool) {
	p, ok := s.placement(s.selected)
	return p.Cafe, ok
}

// Hovered returns the hovered café id, or "".
func (s *Session) Hovered() string { return s.hovered }

// Panning reports whether a drag gesture is active.
func (s *Session) Panning() bool { return s.gesture.active }

// LastCause is the cause of the most recent camera change.
func (s *Session) LastCause() viewport.Cause { return s.cause }

// Transition is how the render layer should animate toward the current camera.
func (s *Session) Transition() present.Transition {
	return present.TransitionFor(s.cause, s.gesture.active)
}

// Placements returns the placed cafés, primary first.
func (s *Session) Placements() []Placement {
	out := make([]Placement, len(s.placed))
	copy(out, s.placed)
	return out
}

// Hidden is the number of nearby cafés that did not fit on the map.
func (s *Session) Hidden() int { return s.hidden }

// Render describes every placed café for the current state, in draw order.
func (s *Session) Render() []present.RenderSpec {
	view := s.view.State()
	out := make([]present.RenderSpec, 0, len(s.placed))
	for _, p := range s.placed {
		spec, ok := present.Present(p.Cafe, p.SlotIndex, view, s.selected, s.hovered)
		if !ok {
			continue
		}
		out = append(out, spec)
	}
	return out
}

// Connectors returns the lines from the primary café to each placed neighbour.
func (s *Session) Connectors() []present.Connector {
	return present.Connectors(len(s.placed) - 1)
}

// ResetViewport is the entry point for an external reset control.
func (s *Session) ResetViewport() Outcome {
	return s.Apply(ResetEvent{})
}

func (s *Session) placement(id string) (Placement, bool) {
	if id == "" {
		return Placement{}, false
	}
	for _, p := range s.placed {
		if p.Cafe.ID == id {
			return p, true
		}
	}
	return Placement{}, false
}
