// Package present turns a café plus the current camera, selection and hover
// into a render description. Everything here is a pure function of its
// inputs.
package present

import (
	"math"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/layout"
	"github.com/jask/cafferot/internal/viewport"
)

// Tier is the drawn size class of a café.
type Tier int

const (
	TierFar Tier = iota
	TierNear
	TierPrimary
)

func (t Tier) String() string {
	switch t {
	case TierPrimary:
		return "primary"
	case TierNear:
		return "near"
	default:
		return "far"
	}
}

// Detail is how much of a café is shown.
type Detail int

const (
	DetailSummary Detail = iota
	DetailExpanded
)

func (d Detail) String() string {
	if d == DetailExpanded {
		return "expanded"
	}
	return "summary"
}

// Action is a button on an expanded card.
type Action string

const (
	ActionEdit  Action = "edit"
	ActionAdopt Action = "adopt"
	ActionVisit Action = "visit"
	ActionBack  Action = "back"
)

// FrameCount is the number of display frames on an expanded card.
const FrameCount = 5

// ExpandZoom is the zoom at which the selected café switches to expanded detail.
const ExpandZoom = 2.0

// RenderSpec describes one café for a single frame.
type RenderSpec struct {
	ID        string
	Name      string
	Level     int
	SlotIndex int
	Slot      layout.Slot
	Primary   bool
	Tier      Tier
	Detail    Detail
	HoverCard bool
	Raised    bool
	SubItems  int
	Frames    [FrameCount]bool
	Actions   []Action
}

// TierFor returns the size class for a slot. Slot 0 is always primary.
func TierFor(slotIndex int, s layout.Slot) Tier {
	if slotIndex == 0 {
		return TierPrimary
	}
	if s.Distance() < layout.NearThreshold {
		return TierNear
	}
	return TierFar
}

// Present builds the RenderSpec for c at slotIndex. It reports false when
// the slot does not exist, in which case the café is not drawn.
func Present(c cafe.Cafe, slotIndex int, view viewport.State, selection, hover string) (RenderSpec, bool) {
	slot, err := layout.SlotAt(slotIndex)
	if err != nil {
		return RenderSpec{}, false
	}
	spec := RenderSpec{
		ID:        c.ID,
		Name:      c.Name,
		Level:     c.Level,
		SlotIndex: slotIndex,
		Slot:      slot,
		Primary:   slotIndex == 0,
		Tier:      TierFor(slotIndex, slot),
		Detail:    DetailSummary,
		SubItems:  c.SubItemCount(),
	}
	if selection != "" && selection == c.ID && view.Zoom >= ExpandZoom {
		spec.Detail = DetailExpanded
		for i := range spec.Frames {
			spec.Frames[i] = i < spec.SubItems
		}
		if spec.Primary {
			spec.Actions = []Action{ActionEdit, ActionBack}
		} else {
			spec.Actions = []Action{ActionAdopt, ActionVisit, ActionBack}
		}
	}
	if hover != "" && hover == c.ID {
		spec.Raised = true
		spec.HoverCard = view.Zoom < ExpandZoom
	}
	return spec, true
}

// Footprint is the half width and half height, in canvas cells at zoom 1,
// of a café drawn at tier t. Hit regions use the same extents.
func Footprint(t Tier) (halfW, halfH float64) {
	switch t {
	case TierPrimary:
		return 8, 3
	case TierNear:
		return 7, 2
	default:
		return 6, 2
	}
}

// Rect is an inclusive block of canvas cells.
type Rect struct {
	X0, Y0, X1, Y1 int
}

// Contains reports whether the cell under point (x, y) is inside r.
func (r Rect) Contains(x, y float64) bool {
	cx, cy := math.Floor(x), math.Floor(y)
	return cx >= float64(r.X0) && cx <= float64(r.X1) && cy >= float64(r.Y0) && cy <= float64(r.Y1)
}

// CellRect returns the cells a card of tier t at slot s covers on a w by h
// canvas under view. The card is drawn into exactly these cells and hit
// against them.
func CellRect(s layout.Slot, t Tier, view viewport.State, w, h float64) Rect {
	sx, sy := view.ToScreen(s.Project(w, h))
	hw, hh := Footprint(t)
	hw *= view.Zoom
	hh *= view.Zoom
	x0 := int(math.Round(sx - hw))
	y0 := int(math.Round(sy - hh))
	return Rect{
		X0: x0,
		Y0: y0,
		X1: max(int(math.Round(sx+hw))-1, x0),
		Y1: max(int(math.Round(sy+hh))-1, y0),
	}
}

// Connector is a line from the primary café to a secondary slot.
type Connector struct {
	From layout.Slot
	To   layout.Slot
}

// Connectors returns the lines for the first n secondary cafés that fit on
// the map.
func Connectors(n int) []Connector {
	if n > layout.Capacity() {
		n = layout.Capacity()
	}
	if n <= 0 {
		return nil
	}
	out := make([]Connector, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Connector{From: layout.Center, To: layout.MustSlotAt(i)})
	}
	return out
}

// GridRings are the background ring radii, in percent of the canvas.
var GridRings = []float64{20, 40, 60}
