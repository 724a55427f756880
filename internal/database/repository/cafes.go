package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jask/cafferot/internal/cafe"
)

// CafeRepo handles cafés and their displayed cafferots.
type CafeRepo struct {
	db DBTX
}

func NewCafeRepo(db *sql.DB) *CafeRepo {
	return &CafeRepo{db: db}
}

// WithTx returns a copy of the repo bound to tx.
func (r *CafeRepo) WithTx(tx *sql.Tx) *CafeRepo {
	return &CafeRepo{db: tx}
}

// Upsert writes the café row. Displayed cafferots are managed by CafferotRepo.
func (r *CafeRepo) Upsert(ctx context.Context, c cafe.Cafe) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cafes(id, owner_id, name, level)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 owner_id=excluded.owner_id,
	 name=excluded.name,
	 level=excluded.level;
	`, c.ID, c.OwnerID, c.Name, c.Level)
	return err
}

// Get returns nil when the café does not exist.
func (r *CafeRepo) Get(ctx context.Context, id string) (*cafe.Cafe, error) {
	list, err := r.query(ctx, `WHERE id = ?`, id)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// ByOwner returns the first café owned by ownerID, or nil.
func (r *CafeRepo) ByOwner(ctx context.Context, ownerID string) (*cafe.Cafe, error) {
	list, err := r.query(ctx, `WHERE owner_id = ?`, ownerID)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

// Nearby returns every café not owned by ownerID, in insertion order.
func (r *CafeRepo) Nearby(ctx context.Context, ownerID string) ([]cafe.Cafe, error) {
	return r.query(ctx, `WHERE owner_id <> ?`, ownerID)
}

func (r *CafeRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cafes`).Scan(&n)
	return n, err
}

func (r *CafeRepo) query(ctx context.Context, where string, args ...interface{}) ([]cafe.Cafe, error) {
	q := strings.TrimSpace(`SELECT id, owner_id, name, level FROM cafes ` + where + ` ORDER BY rowid`)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []cafe.Cafe
	index := map[string]int{}
	for rows.Next() {
		var c cafe.Cafe
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Level); err != nil {
			return nil, err
		}
		index[c.ID] = len(out)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}
	if err := r.attachDisplayed(ctx, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *CafeRepo) attachDisplayed(ctx context.Context, cafes []cafe.Cafe, index map[string]int) error {
	rows, err := r.db.QueryContext(ctx, `
	SELECT cafe_id, `+cafferotColumns+`
	FROM cafferots WHERE displayed = 1 AND cafe_id IS NOT NULL
	ORDER BY rowid`)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var cafeID string
		rot, err := scanCafferot(rows, &cafeID)
		if err != nil {
			return err
		}
		if i, ok := index[cafeID]; ok {
			cafes[i].Displayed = append(cafes[i].Displayed, rot)
		}
	}
	return rows.Err()
}
