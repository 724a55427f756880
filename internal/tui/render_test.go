package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/present"
	"github.com/jask/cafferot/internal/scene"
	"github.com/jask/cafferot/internal/viewport"
)

func TestGridTextClipsAndHandlesWideRunes(t *testing.T) {
	t.Parallel()
	g := newGrid(6, 1)
	require.Equal(t, 4, g.text(0, 0, "カフェ", stCanvas, 5))
	require.Equal(t, "カフ  ", g.plain())

	// Overwriting the trailing half of a wide rune blanks its head.
	g.set(1, 0, 'x', stCanvas)
	require.Equal(t, " xフ  ", g.plain())
}

func TestGridBox(t *testing.T) {
	t.Parallel()
	g := newGrid(4, 3)
	g.box(0, 0, 3, 2, stCafeBorder, stCafeFill)
	require.Equal(t, "╭──╮\n│  │\n╰──╯", g.plain())
	require.Equal(t, stCafeFill, g.at(1, 1).st)
}

func TestDashedLineSkipsDrawnCells(t *testing.T) {
	t.Parallel()
	g := newGrid(10, 1)
	g.set(4, 0, 'X', stCafeFill)
	g.dashed(0, 0.5, 9, 0.5, stConnector)
	line := g.plain()
	require.Equal(t, 'X', []rune(line)[4])
	require.True(t, strings.ContainsRune(line, '─'))
	require.True(t, strings.Contains(line, " "), "dashes leave gaps")
}

func TestDrawMapExpandsSelectedCard(t *testing.T) {
	t.Parallel()
	primary := cafe.Cafe{ID: "me", Name: "My Cafe", Level: 3, Displayed: []cafe.Cafferot{{ID: "x"}, {ID: "y"}}}
	s := scene.NewSession(primary, []cafe.Cafe{{ID: "a", Name: "Cafe A", Level: 2}}, scene.WithCanvas(80, 40))

	overview := drawMap(s, s.Viewport(), 80, 40).plain()
	require.Contains(t, overview, "My Cafe")
	require.Contains(t, overview, "Cafe A")
	require.Contains(t, overview, "Lv.3")
	require.NotContains(t, overview, "[e]dit")

	s.Apply(scene.SelectEntity{ID: "me"})
	focused := drawMap(s, s.Viewport(), 80, 40).plain()
	require.Contains(t, focused, "[■] [■] [ ] [ ] [ ]")
	require.Contains(t, focused, "[e]dit [b]ack")
	require.Contains(t, focused, "on display 2/5")
}

func TestDrawMapHoverCard(t *testing.T) {
	t.Parallel()
	s := scene.NewSession(cafe.Cafe{ID: "me", Name: "My Cafe", Level: 3}, nil, scene.WithCanvas(80, 40))
	s.Apply(scene.PointerMoveEvent{X: 40, Y: 20})
	require.Equal(t, "me", s.Hovered())

	out := drawMap(s, s.Viewport(), 80, 40).plain()
	require.Contains(t, out, "My Cafe (yours)")
	require.Contains(t, out, "Level 3 · 0 on display")
}

func TestTweenRetarget(t *testing.T) {
	t.Parallel()
	start := time.Unix(0, 0)
	target := viewport.State{PanX: -100, PanY: -50, Zoom: 2.8}
	focus := present.TransitionFor(viewport.CauseFocus, false)

	var tw tween
	shown := tw.retarget(viewport.Identity, target, focus, start)
	require.Equal(t, viewport.Identity, shown)
	require.True(t, tw.active)

	mid, running := tw.at(start.Add(300 * time.Millisecond))
	require.True(t, running)
	require.Less(t, mid.PanX, 0.0)
	require.Greater(t, mid.PanX, -100.0)

	// Retargeting mid-flight starts from what is on screen.
	shown = tw.retarget(mid, viewport.Identity, focus, start.Add(300*time.Millisecond))
	require.Equal(t, mid, shown)
	end, running := tw.at(start.Add(time.Second))
	require.False(t, running)
	require.Equal(t, viewport.Identity, end)

	shown = tw.retarget(end, target, present.TransitionFor(viewport.CauseWheel, false), start)
	require.Equal(t, target, shown)
	require.False(t, tw.active)
}

func TestFindCafe(t *testing.T) {
	t.Parallel()
	placed := []scene.Placement{
		{Cafe: cafe.Cafe{ID: "me", Name: "My Cafe"}},
		{Cafe: cafe.Cafe{ID: "a", Name: "Cafe A"}, SlotIndex: 1},
		{Cafe: cafe.Cafe{ID: "b", Name: "Bean Bar"}, SlotIndex: 2},
	}
	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"cafe a", "a", true},
		{"bean", "b", true},
		{"cafe", "a", true},
		{"bean bat", "b", true},
		{"zzzz", "", false},
		{"  ", "", false},
	}
	for _, tc := range cases {
		p, ok := findCafe(tc.query, placed)
		require.Equal(t, tc.ok, ok, tc.query)
		require.Equal(t, tc.want, p.Cafe.ID, tc.query)
	}
}

func TestKeyRegistryScopes(t *testing.T) {
	t.Parallel()
	r := NewKeyRegistry(DefaultBindings())
	a := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}

	require.Empty(t, r.Action(a, scopeMap))
	require.Equal(t, actAdopt, r.Action(a, scopeFocused))
	require.True(t, r.IsAction(tea.KeyMsg{Type: tea.KeyCtrlC}, actQuit, scopeSearch))
	require.False(t, r.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, actQuit, scopeSearch))
	require.True(t, strings.HasPrefix(r.Help(scopeMap), "q quit"))
}
