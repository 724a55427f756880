package viewport

// Cause records why the camera last changed. The render layer uses it to
// pick how the change is animated.
type Cause int

const (
	CauseNone Cause = iota
	CauseWheel
	CauseDrag
	CauseFocus
	CauseReset
)

func (c Cause) String() string {
	switch c {
	case CauseWheel:
		return "wheel"
	case CauseDrag:
		return "drag"
	case CauseFocus:
		return "focus"
	case CauseReset:
		return "reset"
	default:
		return "none"
	}
}

// Animated reports whether the change came from a selection transition.
func (c Cause) Animated() bool {
	return c == CauseFocus || c == CauseReset
}
