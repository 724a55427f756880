package service

import (
	"context"
	"database/sql"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/cafferot/internal/database"
	"github.com/jask/cafferot/internal/database/repository"
	"github.com/jask/cafferot/internal/sample"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, database.SeedDefaults(context.Background(), db, "me"))
	return db
}

func TestFeedReportsAppendedCafes(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db := seededDB(t)
	cafes := repository.NewCafeRepo(db)
	feed := &Feed{Cafes: cafes, OwnerID: "me"}

	snap, err := feed.Poll(ctx)
	require.NoError(t, err)
	require.Equal(t, "My Cafe", snap.Primary.Name)
	require.Len(t, snap.Nearby, 16)
	require.Zero(t, snap.Added)

	added, err := sample.Seed(ctx, sample.Repos{Cafes: cafes, Cafferots: repository.NewCafferotRepo(db)}, 2, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	snap, err = feed.Poll(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, snap.Added)
	require.Len(t, snap.Nearby, 18)
	require.Equal(t, added[1].ID, snap.Nearby[17].ID)

	snap, err = feed.Poll(ctx)
	require.NoError(t, err)
	require.Zero(t, snap.Added)
}

func TestFeedWithoutOwnCafe(t *testing.T) {
	t.Parallel()
	db := seededDB(t)
	feed := &Feed{Cafes: repository.NewCafeRepo(db), OwnerID: "stranger"}
	_, err := feed.Poll(context.Background())
	require.Error(t, err)
}

func TestActionsAdoptAndVisit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := seededDB(t)
	cafes := repository.NewCafeRepo(db)
	rots := repository.NewCafferotRepo(db)
	actions := &Actions{DB: db, Cafes: cafes, Cafferots: rots, Events: repository.NewEventRepo(db)}

	nearby, err := cafes.Nearby(ctx, "me")
	require.NoError(t, err)
	target := nearby[1] // Cafe B, three on display

	n, err := actions.Adopt(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	n, err = actions.Adopt(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	list, err := rots.ListByCafe(ctx, target.ID)
	require.NoError(t, err)
	for _, r := range list {
		require.Equal(t, 2, r.AdoptionCount)
	}

	n, err = actions.Visit(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = actions.Visit(ctx, "missing")
	require.Error(t, err)
}

func TestAdoptRollsBackOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := seededDB(t)
	cafes := repository.NewCafeRepo(db)
	rots := repository.NewCafferotRepo(db)
	events := repository.NewEventRepo(db)
	actions := &Actions{DB: db, Cafes: cafes, Cafferots: rots, Events: events}

	_, err := db.ExecContext(ctx, `CREATE TRIGGER fail_adopt BEFORE UPDATE ON cafferots
	BEGIN SELECT RAISE(ABORT, 'adoption locked'); END;`)
	require.NoError(t, err)

	nearby, err := cafes.Nearby(ctx, "me")
	require.NoError(t, err)
	target := nearby[1]

	_, err = actions.Adopt(ctx, target.ID)
	require.ErrorContains(t, err, "adoption locked")

	n, err := events.CountByCafe(ctx, target.ID, repository.EventAdopt)
	require.NoError(t, err)
	require.Zero(t, n)

	list, err := rots.ListByCafe(ctx, target.ID)
	require.NoError(t, err)
	require.NotEmpty(t, list)
	for _, r := range list {
		require.Zero(t, r.AdoptionCount)
	}

	// visits do not touch cafferots and still go through
	n, err = actions.Visit(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestActionsRequireDB(t *testing.T) {
	t.Parallel()
	db := seededDB(t)
	actions := &Actions{Cafes: repository.NewCafeRepo(db), Cafferots: repository.NewCafferotRepo(db), Events: repository.NewEventRepo(db)}
	_, err := actions.Adopt(context.Background(), "any")
	require.Error(t, err)
}

func TestMaintenanceReset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := seededDB(t)
	require.NoError(t, (&MaintenanceService{DB: db}).Reset(ctx))
	n, err := repository.NewCafeRepo(db).Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)

	require.Error(t, (&MaintenanceService{}).Reset(ctx))
}
