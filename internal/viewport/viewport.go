// Package viewport holds the camera transform applied to the map canvas.
package viewport

import "math"

const (
	MinZoom = 0.5
	MaxZoom = 3.0
)

// State is pan offset plus zoom. A screen point is Pan + content*Zoom,
// with the scale origin at the top-left of the canvas.
type State struct {
	PanX float64
	PanY float64
	Zoom float64
}

// Identity is the resting camera.
var Identity = State{PanX: 0, PanY: 0, Zoom: 1}

// Viewport is the mutable camera of one view session.
type Viewport struct {
	s State
}

// New returns a viewport at Identity.
func New() *Viewport {
	return &Viewport{s: Identity}
}

// State returns the current values.
func (v *Viewport) State() State { return v.s }

// Pan shifts the camera by dx, dy. Pan is unconstrained.
func (v *Viewport) Pan(dx, dy float64) {
	v.s.PanX += dx
	v.s.PanY += dy
}

// PanTo sets the pan offset, leaving zoom untouched.
func (v *Viewport) PanTo(x, y float64) {
	v.s.PanX = x
	v.s.PanY = y
}

// ZoomBy adds delta to zoom and saturates at the bounds.
func (v *Viewport) ZoomBy(delta float64) {
	v.s.Zoom = Clamp(v.s.Zoom + delta)
}

// Reset returns the camera to Identity.
func (v *Viewport) Reset() { v.s = Identity }

// SetAbsolute replaces all three values. Pan is not clamped so a focus
// target can sit anywhere; zoom is still kept in bounds.
func (v *Viewport) SetAbsolute(panX, panY, zoom float64) {
	v.s = State{PanX: panX, PanY: panY, Zoom: Clamp(zoom)}
}

// Clamp bounds a zoom value. NaN collapses to 1.
func Clamp(z float64) float64 {
	if math.IsNaN(z) {
		return 1
	}
	return math.Min(math.Max(MinZoom, z), MaxZoom)
}

// ToScreen maps a content point to screen coordinates.
func (s State) ToScreen(x, y float64) (float64, float64) {
	return s.PanX + x*s.Zoom, s.PanY + y*s.Zoom
}

// Percent is the zoom readout, e.g. 280 for 2.8.
func (s State) Percent() int {
	return int(math.Round(s.Zoom * 100))
}

// Lerp interpolates each component between a and b at t in [0,1].
func Lerp(a, b State, t float64) State {
	return State{
		PanX: a.PanX + (b.PanX-a.PanX)*t,
		PanY: a.PanY + (b.PanY-a.PanY)*t,
		Zoom: a.Zoom + (b.Zoom-a.Zoom)*t,
	}
}
