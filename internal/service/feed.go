package service

import (
	"context"
	"fmt"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/database/repository"
)

// Snapshot is the map input: the owner's café and everyone else in order.
type Snapshot struct {
	Primary cafe.Cafe
	Nearby  []cafe.Cafe
	// Added counts cafés this feed had not returned before.
	Added int
}

// Feed polls the café store. New cafés show up at the end of Nearby, which
// is how a realtime source appends to the map.
type Feed struct {
	Cafes   *repository.CafeRepo
	OwnerID string

	seen map[string]struct{}
}

// Poll returns the current snapshot. The first poll reports Added = 0.
func (f *Feed) Poll(ctx context.Context) (Snapshot, error) {
	if f.Cafes == nil {
		return Snapshot{}, fmt.Errorf("feed: cafe repo not configured")
	}
	mine, err := f.Cafes.ByOwner(ctx, f.OwnerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load own cafe: %w", err)
	}
	if mine == nil {
		return Snapshot{}, fmt.Errorf("feed: no cafe owned by %q", f.OwnerID)
	}
	nearby, err := f.Cafes.Nearby(ctx, f.OwnerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load nearby cafes: %w", err)
	}

	first := f.seen == nil
	if first {
		f.seen = make(map[string]struct{}, len(nearby)+1)
	}
	added := 0
	for _, c := range append([]cafe.Cafe{*mine}, nearby...) {
		if _, ok := f.seen[c.ID]; ok {
			continue
		}
		f.seen[c.ID] = struct{}{}
		if !first {
			added++
		}
	}
	return Snapshot{Primary: *mine, Nearby: nearby, Added: added}, nil
}
