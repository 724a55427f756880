// Package layout defines the fixed radial slot positions of the café map.
//
// Positions are percentages of the canvas. Slot 0 is the centre and is
// reserved for the primary café; the remaining slots form an inner and an
// outer ring, each covering the four diagonals followed by the four
// cardinal directions.
package layout

import (
	"errors"
	"fmt"
	"math"
)

// ErrSlotOutOfRange is returned for indexes outside [0, SlotCount).
var ErrSlotOutOfRange = errors.New("layout: slot out of range")

// Slot is a position in percent-of-canvas coordinates.
type Slot struct {
	X float64
	Y float64
}

// Ring groups slots by distance from the centre.
type Ring int

const (
	RingCenter Ring = iota
	RingInner
	RingOuter
)

func (r Ring) String() string {
	switch r {
	case RingCenter:
		return "center"
	case RingInner:
		return "inner"
	default:
		return "outer"
	}
}

// Center is slot 0.
var Center = Slot{X: 50, Y: 50}

var slots = [...]Slot{
	Center,
	// inner ring, diagonals
	{30, 30}, {70, 30}, {30, 70}, {70, 70},
	// inner ring, up/down/left/right
	{50, 30}, {50, 70}, {30, 50}, {70, 50},
	// outer ring, diagonals
	{15, 15}, {85, 15}, {15, 85}, {85, 85},
	// outer ring, up/down/left/right
	{50, 10}, {50, 90}, {10, 50}, {90, 50},
}

// SlotCount is the number of slots, the centre included.
const SlotCount = len(slots)

// NearThreshold separates the inner ring from the outer ring.
const NearThreshold = 30.0

// SlotAt returns the position of slot index.
func SlotAt(index int) (Slot, error) {
	if index < 0 || index >= SlotCount {
		return Slot{}, fmt.Errorf("%w: %d", ErrSlotOutOfRange, index)
	}
	return slots[index], nil
}

// MustSlotAt is SlotAt for indexes known to be valid.
func MustSlotAt(index int) Slot {
	s, err := SlotAt(index)
	if err != nil {
		panic(err)
	}
	return s
}

// Capacity is how many secondary cafés can be placed.
func Capacity() int { return SlotCount - 1 }

// Distance is the Euclidean distance of s from the centre, in percent units.
func (s Slot) Distance() float64 {
	return math.Hypot(s.X-Center.X, s.Y-Center.Y)
}

// Ring classifies the slot.
func (s Slot) Ring() Ring {
	switch d := s.Distance(); {
	case d == 0:
		return RingCenter
	case d < NearThreshold:
		return RingInner
	default:
		return RingOuter
	}
}

// Project converts the slot to canvas coordinates for a canvas of w×h.
func (s Slot) Project(w, h float64) (x, y float64) {
	return s.X / 100 * w, s.Y / 100 * h
}
