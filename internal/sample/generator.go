package sample

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/database/repository"
)

// Repos bundles repos used by Seed.
type Repos struct {
	Cafes     *repository.CafeRepo
	Cafferots *repository.CafferotRepo
}

var (
	prefixes = []string{"Blue", "Little", "Corner", "Velvet", "Harbor", "Sunny", "Quiet", "Copper"}
	suffixes = []string{"Roastery", "Bean", "Kissa", "Espresso Bar", "Tea Room", "Cup"}
	rotNames = []string{"Latte Owl", "Bean Sprite", "Crema Bear", "Parfait Knight", "Macaron", "Drip Dragon"}
)

// Seed adds n random cafés, each with up to five displayed cafferots, and
// returns them in insertion order.
func Seed(ctx context.Context, repos Repos, n int, rng *rand.Rand) ([]cafe.Cafe, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	out := make([]cafe.Cafe, 0, n)
	for i := 0; i < n; i++ {
		c := cafe.Cafe{
			ID:      uuid.NewString(),
			OwnerID: "sample-" + uuid.NewString()[:8],
			Name:    fmt.Sprintf("%s %s", prefixes[rng.Intn(len(prefixes))], suffixes[rng.Intn(len(suffixes))]),
			Level:   rng.Intn(5) + 1,
		}
		if err := repos.Cafes.Upsert(ctx, c); err != nil {
			return nil, err
		}
		shown := rng.Intn(6)
		for j := 0; j < shown; j++ {
			rot := cafe.Cafferot{
				ID:       uuid.NewString(),
				Name:     rotNames[rng.Intn(len(rotNames))],
				Category: []cafe.Category{cafe.CategoryCoffee, cafe.CategoryBean, cafe.CategorySweets, cafe.CategoryParfait}[rng.Intn(4)],
				AuthorID: c.OwnerID,
				Value:    rng.Intn(100),
			}
			if err := repos.Cafferots.Upsert(ctx, c.ID, rot, true); err != nil {
				return nil, err
			}
			c.Displayed = append(c.Displayed, rot)
		}
		out = append(out, c)
	}
	return out, nil
}
