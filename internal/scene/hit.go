package scene

import "github.com/jask/cafferot/internal/present"

// Bounds returns the cells a placement covers under the current camera.
// They are the same cells the card is drawn into, scaled with zoom around
// the projected slot point.
func (s *Session) Bounds(p Placement) present.Rect {
	tier := present.TierFor(p.SlotIndex, p.Slot)
	return present.CellRect(p.Slot, tier, s.view.State(), s.canvas.W, s.canvas.H)
}

// HitTest returns the café under a screen point. The hovered café is drawn
// on top and is tested first, then later placements before earlier ones.
func (s *Session) HitTest(x, y float64) (string, bool) {
	if !s.canvas.Measured() || !finite(x, y) {
		return "", false
	}
	if p, ok := s.placement(s.hovered); ok && s.Bounds(p).Contains(x, y) {
		return p.Cafe.ID, true
	}
	for i := len(s.placed) - 1; i >= 0; i-- {
		p := s.placed[i]
		if s.Bounds(p).Contains(x, y) {
			return p.Cafe.ID, true
		}
	}
	return "", false
}
