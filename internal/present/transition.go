package present

import (
	"math"
	"time"

	"github.com/jask/cafferot/internal/viewport"
)

// FocusDuration is how long a selection transition is tweened for.
const FocusDuration = 600 * time.Millisecond

// Curve is a CSS style cubic bézier easing with fixed end points (0,0) and (1,1).
type Curve struct {
	X1, Y1, X2, Y2 float64
}

var (
	Linear    = Curve{0, 0, 1, 1}
	EaseInOut = Curve{0.4, 0, 0.2, 1}
)

// Transition is how the render layer moves from the displayed camera to
// the logical one.
type Transition struct {
	Duration time.Duration
	Curve    Curve
}

// Instant reports whether the change should be applied without tweening.
func (t Transition) Instant() bool { return t.Duration <= 0 }

// TransitionFor picks the transition for a camera change. A pan gesture in
// progress always wins so dragging never trails the pointer.
func TransitionFor(cause viewport.Cause, panning bool) Transition {
	if panning || !cause.Animated() {
		return Transition{Curve: Linear}
	}
	return Transition{Duration: FocusDuration, Curve: EaseInOut}
}

// Ease maps progress t in [0,1] to eased progress.
func (c Curve) Ease(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	if c == Linear {
		return t
	}
	s := c.solveX(t)
	return bezier(s, c.Y1, c.Y2)
}

// solveX finds the curve parameter whose x equals x, Newton first and
// bisection when the slope flattens out.
func (c Curve) solveX(x float64) float64 {
	s := x
	for i := 0; i < 8; i++ {
		dx := bezier(s, c.X1, c.X2) - x
		if math.Abs(dx) < 1e-7 {
			return s
		}
		d := bezierSlope(s, c.X1, c.X2)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}
	lo, hi := 0.0, 1.0
	s = x
	for i := 0; i < 50; i++ {
		v := bezier(s, c.X1, c.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

func bezier(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*s*p1 + 3*inv*s*s*p2 + s*s*s
}

func bezierSlope(s, p1, p2 float64) float64 {
	inv := 1 - s
	return 3*inv*inv*p1 + 6*inv*s*(p2-p1) + 3*s*s*(1-p2)
}
