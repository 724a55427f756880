package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cafferot/internal/cafe"
	"github.com/jask/cafferot/internal/database"
	"github.com/jask/cafferot/internal/database/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := database.OpenMigrated(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCafeRepoOrderingAndOwner(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := openTestDB(t)
	repo := repository.NewCafeRepo(db)

	for _, c := range []cafe.Cafe{
		{ID: "z", OwnerID: "me", Name: "Mine", Level: 3},
		{ID: "b", OwnerID: "o1", Name: "Cafe B", Level: 4},
		{ID: "a", OwnerID: "o2", Name: "Cafe A", Level: 2},
	} {
		require.NoError(t, repo.Upsert(ctx, c))
	}

	// upsert keeps the original position
	require.NoError(t, repo.Upsert(ctx, cafe.Cafe{ID: "b", OwnerID: "o1", Name: "Cafe B2", Level: 5}))

	all, err := repo.Nearby(ctx, "nobody")
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"z", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})
	require.Equal(t, "Cafe B2", all[1].Name)

	mine, err := repo.ByOwner(ctx, "me")
	require.NoError(t, err)
	require.NotNil(t, mine)
	require.Equal(t, "z", mine.ID)

	missing, err := repo.ByOwner(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)

	nearby, err := repo.Nearby(ctx, "me")
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	require.Equal(t, "b", nearby[0].ID)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestDisplayedCafferotsAttached(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	cafes := repository.NewCafeRepo(db)
	rots := repository.NewCafferotRepo(db)

	require.NoError(t, cafes.Upsert(ctx, cafe.Cafe{ID: "c1", OwnerID: "o", Name: "One", Level: 1}))
	require.NoError(t, rots.Upsert(ctx, "c1", cafe.Cafferot{ID: "r1", Name: "Shown", Category: "Coffee", AuthorID: "o"}, true))
	require.NoError(t, rots.Upsert(ctx, "c1", cafe.Cafferot{ID: "r2", Name: "Stored", Category: "weird", AuthorID: "o"}, false))
	require.NoError(t, rots.Upsert(ctx, "", cafe.Cafferot{ID: "r3", Name: "Loose", AuthorID: "o"}, true))

	got, err := cafes.Get(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 1, got.SubItemCount())
	require.Equal(t, "Shown", got.Displayed[0].Name)
	require.Equal(t, cafe.CategoryCoffee, got.Displayed[0].Category)

	all, err := rots.ListByCafe(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, cafe.CategoryOther, all[1].Category)

	changed, err := rots.IncrementAdoption(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, int64(1), changed)
	all, err = rots.ListByCafe(ctx, "c1")
	require.NoError(t, err)
	require.Equal(t, 1, all[0].AdoptionCount)
	require.Equal(t, 0, all[1].AdoptionCount)
}

func TestEventRepoCounts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, repository.NewCafeRepo(db).Upsert(ctx, cafe.Cafe{ID: "c1", OwnerID: "o", Name: "One", Level: 1}))
	events := repository.NewEventRepo(db)

	require.NoError(t, events.Insert(ctx, repository.Event{ID: "e1", CafeID: "c1", Kind: repository.EventVisit}))
	require.NoError(t, events.Insert(ctx, repository.Event{ID: "e2", CafeID: "c1", Kind: repository.EventAdopt}))
	require.NoError(t, events.Insert(ctx, repository.Event{ID: "e3", CafeID: "c1", Kind: repository.EventVisit}))
	require.Error(t, events.Insert(ctx, repository.Event{ID: "e4", CafeID: "missing", Kind: repository.EventVisit}), "foreign key")

	visits, err := events.CountByCafe(ctx, "c1", repository.EventVisit)
	require.NoError(t, err)
	require.Equal(t, 2, visits)
	total, err := events.CountByCafe(ctx, "c1", "")
	require.NoError(t, err)
	require.Equal(t, 3, total)
}
