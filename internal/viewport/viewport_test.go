package viewport

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStartsAtIdentity(t *testing.T) {
	require.Equal(t, State{0, 0, 1}, New().State())
}

func TestZoomBySaturates(t *testing.T) {
	v := New()
	v.ZoomBy(10)
	require.Equal(t, MaxZoom, v.State().Zoom)
	v.ZoomBy(-10)
	require.Equal(t, MinZoom, v.State().Zoom)
	v.ZoomBy(math.NaN())
	require.Equal(t, 1.0, v.State().Zoom)
}

func TestZoomBoundsRandomSequence(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	v := New()
	for i := 0; i < 5000; i++ {
		v.ZoomBy((r.Float64() - 0.5) * 3)
		z := v.State().Zoom
		require.GreaterOrEqual(t, z, MinZoom)
		require.LessOrEqual(t, z, MaxZoom)
	}
}

func TestPanAndReset(t *testing.T) {
	v := New()
	v.Pan(10, -4)
	v.Pan(-2.5, 1)
	require.Equal(t, State{7.5, -3, 1}, v.State())
	v.PanTo(-1e6, 1e6)
	require.Equal(t, State{-1e6, 1e6, 1}, v.State())
	v.Reset()
	require.Equal(t, Identity, v.State())
}

func TestSetAbsoluteKeepsPanUnclamped(t *testing.T) {
	v := New()
	v.SetAbsolute(-272, -204, 2.8)
	require.Equal(t, State{-272, -204, 2.8}, v.State())
}

func TestToScreen(t *testing.T) {
	s := State{PanX: -272, PanY: -204, Zoom: 2.8}
	x, y := s.ToScreen(240, 180)
	require.InDelta(t, 400, x, 1e-9)
	require.InDelta(t, 300, y, 1e-9)
}

func TestPercentAndLerp(t *testing.T) {
	require.Equal(t, 280, State{Zoom: 2.8}.Percent())
	require.Equal(t, 50, State{Zoom: 0.5}.Percent())

	mid := Lerp(Identity, State{PanX: -100, PanY: 50, Zoom: 3}, 0.5)
	require.Equal(t, State{PanX: -50, PanY: 25, Zoom: 2}, mid)
}
