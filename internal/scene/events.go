package scene

import (
	"strings"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/viewport"
)

// Event is an input consumed by Session.Apply.
type Event interface {
	event()
}

// Button follows DOM numbering: 0 is the primary button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// WheelEvent is one wheel step. Positive DeltaY scrolls down and zooms out.
type WheelEvent struct {
	DeltaY float64
}

// PointerDownEvent is a button press at canvas coordinates.
type PointerDownEvent struct {
	Button Button
	X, Y   float64
}

type PointerMoveEvent struct {
	X, Y float64
}

type PointerUpEvent struct {
	X, Y float64
}

// PointerLeaveEvent means the pointer left the canvas.
type PointerLeaveEvent struct{}

// KeyEvent carries a key name such as "esc".
type KeyEvent struct {
	Key string
}

// SelectEntity is a click on a café that did not come from a pointer,
// e.g. a search jump.
type SelectEntity struct {
	ID string
}

// BackEvent is the back action on an expanded card.
type BackEvent struct{}

// ResetEvent is the external reset button.
type ResetEvent struct{}

// NavigateEvent is a click on a navigation affordance outside the map.
type NavigateEvent struct {
	Target string
}

func (WheelEvent) event()        {}
func (PointerDownEvent) event()  {}
func (PointerMoveEvent) event()  {}
func (PointerUpEvent) event()    {}
func (PointerLeaveEvent) event() {}
func (KeyEvent) event()          {}
func (SelectEntity) event()      {}
func (BackEvent) event()         {}
func (ResetEvent) event()        {}
func (NavigateEvent) event()     {}

// Outcome reports what an event did.
type Outcome struct {
	// Cause is set when the camera changed.
	Cause viewport.Cause
	// Selected is set when a focus transition started.
	Selected *cafe.Cafe
	// Cleared is set when a selection was dropped.
	Cleared bool
	// Navigate is the target of a navigation event.
	Navigate string
	// HoverChanged is set when the hovered café changed.
	HoverChanged bool
}

// Changed reports whether anything visible changed.
func (o Outcome) Changed() bool {
	return o.Cause != viewport.CauseNone || o.Selected != nil || o.Cleared || o.HoverChanged
}

func isEscape(key string) bool {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "esc", "escape":
		return true
	}
	return false
}
