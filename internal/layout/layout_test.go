package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlotZeroIsCenter(t *testing.T) {
	s, err := SlotAt(0)
	require.NoError(t, err)
	require.Equal(t, Slot{X: 50, Y: 50}, s)
	require.Equal(t, RingCenter, s.Ring())
}

func TestSlotAtDeterministic(t *testing.T) {
	require.GreaterOrEqual(t, SlotCount, 16)
	for i := 0; i < SlotCount; i++ {
		a, err := SlotAt(i)
		require.NoError(t, err)
		b, err := SlotAt(i)
		require.NoError(t, err)
		require.Equal(t, a, b, "slot %d", i)
	}
}

func TestSlotAtOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, SlotCount, SlotCount + 10} {
		_, err := SlotAt(idx)
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrSlotOutOfRange))
	}
}

func TestRings(t *testing.T) {
	inner, outer := 0, 0
	for i := 1; i < SlotCount; i++ {
		switch MustSlotAt(i).Ring() {
		case RingInner:
			inner++
		case RingOuter:
			outer++
		default:
			t.Fatalf("slot %d unexpectedly at the centre", i)
		}
	}
	require.Equal(t, 8, inner)
	require.Equal(t, 8, outer)
}

func TestCapacity(t *testing.T) {
	require.Equal(t, SlotCount-1, Capacity())
	require.Equal(t, Center, MustSlotAt(0))
}

func TestProject(t *testing.T) {
	x, y := MustSlotAt(1).Project(800, 600)
	require.InDelta(t, 240, x, 1e-9)
	require.InDelta(t, 180, y, 1e-9)
}
