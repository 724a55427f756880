package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/cafferot/internal/database"
	"github.com/jask/cafferot/internal/database/repository"
)

// Actions backs the buttons on an expanded café card.
type Actions struct {
	DB        *sql.DB
	Cafes     *repository.CafeRepo
	Cafferots *repository.CafferotRepo
	Events    *repository.EventRepo
}

// Adopt records an adoption and bumps the adoption count of each cafferot
// the café has on display. It returns the café's adoption total. Nothing is
// written when any step fails.
func (a *Actions) Adopt(ctx context.Context, cafeID string) (int, error) {
	var total int
	err := a.inTx(func(cafes *repository.CafeRepo, rots *repository.CafferotRepo, events *repository.EventRepo) error {
		if err := record(ctx, cafes, events, cafeID, repository.EventAdopt); err != nil {
			return err
		}
		if _, err := rots.IncrementAdoption(ctx, cafeID); err != nil {
			return fmt.Errorf("adopt %s: %w", cafeID, err)
		}
		n, err := events.CountByCafe(ctx, cafeID, repository.EventAdopt)
		total = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Visit records a visit and returns the café's visit total.
func (a *Actions) Visit(ctx context.Context, cafeID string) (int, error) {
	var total int
	err := a.inTx(func(cafes *repository.CafeRepo, _ *repository.CafferotRepo, events *repository.EventRepo) error {
		if err := record(ctx, cafes, events, cafeID, repository.EventVisit); err != nil {
			return err
		}
		n, err := events.CountByCafe(ctx, cafeID, repository.EventVisit)
		total = n
		return err
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (a *Actions) inTx(fn func(*repository.CafeRepo, *repository.CafferotRepo, *repository.EventRepo) error) error {
	if a.DB == nil || a.Cafes == nil || a.Cafferots == nil || a.Events == nil {
		return fmt.Errorf("actions: repos not configured")
	}
	return database.WithTx(a.DB, func(tx *sql.Tx) error {
		return fn(a.Cafes.WithTx(tx), a.Cafferots.WithTx(tx), a.Events.WithTx(tx))
	})
}

func record(ctx context.Context, cafes *repository.CafeRepo, events *repository.EventRepo, cafeID, kind string) error {
	c, err := cafes.Get(ctx, cafeID)
	if err != nil {
		return fmt.Errorf("load cafe %s: %w", cafeID, err)
	}
	if c == nil {
		return fmt.Errorf("%s %s: cafe not found", kind, cafeID)
	}
	if err := events.Insert(ctx, repository.Event{ID: uuid.NewString(), CafeID: cafeID, Kind: kind}); err != nil {
		return fmt.Errorf("%s %s: %w", kind, cafeID, err)
	}
	return nil
}
