package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/database/repository"
)

type seedCafe struct {
	name      string
	level     int
	displayed []string
}

var defaultNearby = []seedCafe{
	{name: "Cafe A", level: 2},
	{name: "Cafe B", level: 4, displayed: []string{"Morning Drip", "Crema Cat", "Cold Brew Owl"}},
	{name: "Cafe C", level: 1},
	{name: "Cafe D", level: 5, displayed: []string{"Parfait Tower", "Bean Golem", "Latte Swan", "Mocha Fox", "Affogato"}},
	{name: "Cafe E", level: 3, displayed: []string{"Sugar Cube"}},
	{name: "Cafe F", level: 2},
	{name: "Cafe G", level: 4, displayed: []string{"Roaster", "Flat White"}},
	{name: "Cafe H", level: 1},
	{name: "Cafe I", level: 3},
	{name: "Cafe J", level: 2},
	{name: "Cafe K", level: 4},
	{name: "Cafe L", level: 3},
	{name: "Cafe M", level: 5, displayed: []string{"Siphon", "Pour Over", "Espresso"}},
	{name: "Cafe N", level: 2},
	{name: "Cafe O", level: 1},
	{name: "Cafe P", level: 4},
}

// SeedID derives a stable id so reseeding never duplicates rows.
func SeedID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(kind+":"+key)).String()
}

// SeedDefaults creates the owner's café and the demo neighbourhood when the
// store is empty. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, ownerID string) error {
	cafes := repository.NewCafeRepo(db)
	n, err := cafes.Count(ctx)
	if err != nil {
		return fmt.Errorf("count cafes: %w", err)
	}
	if n > 0 {
		return nil
	}
	rots := repository.NewCafferotRepo(db)

	mine := seedCafe{name: "My Cafe", level: 3, displayed: []string{"House Blend", "Pudding"}}
	all := append([]seedCafe{mine}, defaultNearby...)
	for i, s := range all {
		owner := ownerID
		if i > 0 {
			owner = fmt.Sprintf("owner-%c", 'a'+i-1)
		}
		c := cafe.Cafe{ID: SeedID("cafe", owner), OwnerID: owner, Name: s.name, Level: s.level}
		if err := cafes.Upsert(ctx, c); err != nil {
			return fmt.Errorf("seed cafe %s: %w", s.name, err)
		}
		for _, name := range s.displayed {
			rot := cafe.Cafferot{
				ID:       SeedID("cafferot", c.ID+"/"+name),
				Name:     name,
				Category: guessCategory(name),
				AuthorID: owner,
				Value:    10 * s.level,
			}
			if err := rots.Upsert(ctx, c.ID, rot, true); err != nil {
				return fmt.Errorf("seed cafferot %s: %w", name, err)
			}
		}
	}
	return nil
}

func guessCategory(name string) cafe.Category {
	switch name {
	case "Parfait Tower":
		return cafe.CategoryParfait
	case "Pudding", "Sugar Cube", "Affogato":
		return cafe.CategorySweets
	case "Bean Golem", "Roaster":
		return cafe.CategoryBean
	default:
		return cafe.CategoryCoffee
	}
}
