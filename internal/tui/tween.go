package tui

import (
	"time"

	"github.com/jask/cafferot/internal/present"
	"github.com/jask/cafferot/internal/viewport"
)

// tween eases the displayed camera toward the logical one.
type tween struct {
	from, to viewport.State
	start    time.Time
	tr       present.Transition
	active   bool
}

// retarget starts a new tween from the currently displayed state. An instant
// transition jumps straight to the target.
func (t *tween) retarget(shown, to viewport.State, tr present.Transition, now time.Time) viewport.State {
	if tr.Instant() || shown == to {
		*t = tween{to: to}
		return to
	}
	*t = tween{from: shown, to: to, start: now, tr: tr, active: true}
	return shown
}

// at returns the displayed state at now and whether the tween is still running.
func (t *tween) at(now time.Time) (viewport.State, bool) {
	if !t.active {
		return t.to, false
	}
	elapsed := now.Sub(t.start)
	if elapsed >= t.tr.Duration {
		t.active = false
		return t.to, false
	}
	p := float64(elapsed) / float64(t.tr.Duration)
	return viewport.Lerp(t.from, t.to, t.tr.Curve.Ease(p)), true
}
