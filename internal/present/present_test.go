package present

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/layout"
	"github.com/jask/cafferot/internal/viewport"
)

func testCafe(id string, displayed int) cafe.Cafe {
	c := cafe.Cafe{ID: id, Name: "Cafe " + id, Level: 2}
	for i := 0; i < displayed; i++ {
		c.Displayed = append(c.Displayed, cafe.Cafferot{ID: id + "-rot", Name: "rot"})
	}
	return c
}

func TestTierFromRing(t *testing.T) {
	cases := []struct {
		slot int
		want Tier
	}{
		{0, TierPrimary},
		{1, TierNear}, // diagonal, distance ~28.3
		{5, TierNear}, // cardinal, distance 20
		{9, TierFar},  // outer diagonal
		{13, TierFar}, // outer cardinal
	}
	for _, tc := range cases {
		spec, ok := Present(testCafe("x", 0), tc.slot, viewport.Identity, "", "")
		require.True(t, ok)
		require.Equal(t, tc.want, spec.Tier, "slot %d", tc.slot)
	}
}

func TestPresentOutOfRangeNotRendered(t *testing.T) {
	_, ok := Present(testCafe("x", 0), layout.SlotCount, viewport.Identity, "", "")
	require.False(t, ok)
}

func TestExpandedOnlyForSelection(t *testing.T) {
	zoomed := viewport.State{Zoom: 2.8}

	spec, _ := Present(testCafe("a", 2), 1, zoomed, "a", "")
	require.Equal(t, DetailExpanded, spec.Detail)
	require.Equal(t, [FrameCount]bool{true, true, false, false, false}, spec.Frames)
	require.Equal(t, []Action{ActionAdopt, ActionVisit, ActionBack}, spec.Actions)

	other, _ := Present(testCafe("b", 2), 2, zoomed, "a", "")
	require.Equal(t, DetailSummary, other.Detail)
	require.Empty(t, other.Actions)

	low, _ := Present(testCafe("a", 2), 1, viewport.State{Zoom: 1.9}, "a", "")
	require.Equal(t, DetailSummary, low.Detail)
}

func TestPrimaryActions(t *testing.T) {
	spec, _ := Present(testCafe("me", 0), 0, viewport.State{Zoom: 2.8}, "me", "")
	require.True(t, spec.Primary)
	require.Equal(t, []Action{ActionEdit, ActionBack}, spec.Actions)
}

func TestHoverCardSuppressedWhenZoomed(t *testing.T) {
	spec, _ := Present(testCafe("a", 0), 3, viewport.State{Zoom: 1.5}, "", "a")
	require.True(t, spec.HoverCard)
	require.True(t, spec.Raised)

	spec, _ = Present(testCafe("a", 0), 3, viewport.State{Zoom: 2}, "", "a")
	require.False(t, spec.HoverCard)
	require.True(t, spec.Raised)

	spec, _ = Present(testCafe("a", 0), 3, viewport.State{Zoom: 1}, "", "b")
	require.False(t, spec.HoverCard)
}

func TestConnectors(t *testing.T) {
	require.Nil(t, Connectors(0))
	lines := Connectors(3)
	require.Len(t, lines, 3)
	require.Equal(t, layout.Center, lines[0].From)
	require.Equal(t, layout.MustSlotAt(1), lines[0].To)
	require.Len(t, Connectors(100), layout.Capacity())
}

func TestTransitionFor(t *testing.T) {
	tr := TransitionFor(viewport.CauseFocus, false)
	require.Equal(t, 600*time.Millisecond, tr.Duration)
	require.Equal(t, EaseInOut, tr.Curve)

	require.True(t, TransitionFor(viewport.CauseReset, false).Duration > 0)
	require.True(t, TransitionFor(viewport.CauseFocus, true).Instant())
	require.True(t, TransitionFor(viewport.CauseWheel, false).Instant())
	require.True(t, TransitionFor(viewport.CauseDrag, false).Instant())
}

func TestEaseInOutShape(t *testing.T) {
	require.Equal(t, 0.0, EaseInOut.Ease(0))
	require.Equal(t, 1.0, EaseInOut.Ease(1))
	require.Equal(t, 0.25, Linear.Ease(0.25))

	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseInOut.Ease(float64(i) / 100)
		require.GreaterOrEqual(t, v, prev)
		prev = v
	}
	// the curve front-loads progress
	require.Greater(t, EaseInOut.Ease(0.5), 0.5)
}

func TestCellRect(t *testing.T) {
	r := CellRect(layout.Center, TierPrimary, viewport.Identity, 80, 40)
	require.Equal(t, Rect{X0: 32, Y0: 17, X1: 47, Y1: 22}, r)

	// degenerate zoom still covers one cell
	r = CellRect(layout.Center, TierFar, viewport.State{Zoom: 0.01}, 80, 40)
	require.Equal(t, r.X0, r.X1)
	require.Equal(t, r.Y0, r.Y1)

	r = Rect{X0: 3, Y0: 3, X1: 5, Y1: 4}
	require.True(t, r.Contains(3, 3))
	require.True(t, r.Contains(5.99, 4.99))
	require.False(t, r.Contains(2.99, 3.5))
	require.False(t, r.Contains(4, 5))
	require.False(t, r.Contains(math.Inf(1), 4))
	require.False(t, r.Contains(math.NaN(), 4))
}
