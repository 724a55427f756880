package repository

import (
	"context"
	"database/sql"
)

// EventRepo records actions taken on cafés.
type EventRepo struct {
	db DBTX
}

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

func (r *EventRepo) WithTx(tx *sql.Tx) *EventRepo { return &EventRepo{db: tx} }

func (r *EventRepo) Insert(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO cafe_events(id, cafe_id, kind) VALUES(?, ?, ?)`, e.ID, e.CafeID, e.Kind)
	return err
}

// CountByCafe counts events of kind for a café; an empty kind counts all.
func (r *EventRepo) CountByCafe(ctx context.Context, cafeID, kind string) (int, error) {
	var n int
	var err error
	if kind == "" {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cafe_events WHERE cafe_id = ?`, cafeID).Scan(&n)
	} else {
		err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cafe_events WHERE cafe_id = ? AND kind = ?`, cafeID, kind).Scan(&n)
	}
	return n, err
}
