package repository

import (
	"context"
	"database/sql"

	"github.com/jask/cafferot/internal/cafe"
)

const cafferotColumns = `id, name, category, image_data, audio_data, author_id, adoption_count, value, created_at`

// CafferotRepo handles cafferots.
type CafferotRepo struct {
	db DBTX
}

func NewCafferotRepo(db *sql.DB) *CafferotRepo { return &CafferotRepo{db: db} }

func (r *CafferotRepo) WithTx(tx *sql.Tx) *CafferotRepo { return &CafferotRepo{db: tx} }

// Upsert writes a cafferot. An empty cafeID leaves it unassigned.
func (r *CafferotRepo) Upsert(ctx context.Context, cafeID string, c cafe.Cafferot, displayed bool) error {
	var owner *string
	if cafeID != "" {
		owner = &cafeID
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO cafferots(id, cafe_id, name, category, image_data, audio_data, author_id, adoption_count, value, displayed)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 cafe_id=excluded.cafe_id,
	 name=excluded.name,
	 category=excluded.category,
	 image_data=excluded.image_data,
	 audio_data=excluded.audio_data,
	 author_id=excluded.author_id,
	 adoption_count=excluded.adoption_count,
	 value=excluded.value,
	 displayed=excluded.displayed;
	`, c.ID, owner, c.Name, string(cafe.ParseCategory(string(c.Category))), c.ImageData, c.AudioData,
		c.AuthorID, c.AdoptionCount, c.Value, boolInt(displayed))
	return err
}

// ListByCafe returns all cafferots of a café, displayed or not.
func (r *CafferotRepo) ListByCafe(ctx context.Context, cafeID string) ([]cafe.Cafferot, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+cafferotColumns+` FROM cafferots WHERE cafe_id = ? ORDER BY rowid`, cafeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []cafe.Cafferot
	for rows.Next() {
		rot, err := scanCafferot(rows, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, rot)
	}
	return out, rows.Err()
}

// IncrementAdoption bumps the adoption count of every displayed cafferot
// of a café and returns how many rows changed.
func (r *CafferotRepo) IncrementAdoption(ctx context.Context, cafeID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE cafferots SET adoption_count = adoption_count + 1 WHERE cafe_id = ? AND displayed = 1`, cafeID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanCafferot reads cafferotColumns, preceded by the owning café id when
// cafeID is non-nil.
func scanCafferot(s scanner, cafeID *string) (cafe.Cafferot, error) {
	var c cafe.Cafferot
	var category string
	dest := []interface{}{&c.ID, &c.Name, &category, &c.ImageData, &c.AudioData, &c.AuthorID, &c.AdoptionCount, &c.Value, &c.CreatedAt}
	if cafeID != nil {
		dest = append([]interface{}{cafeID}, dest...)
	}
	if err := s.Scan(dest...); err != nil {
		return cafe.Cafferot{}, err
	}
	c.Category = cafe.ParseCategory(category)
	return c, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
