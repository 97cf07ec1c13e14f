package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/buscacep/internal/database"
	"github.com/jask/buscacep/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.LookupRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	// second run is a no-op
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewLookupRepo(db)
}

func TestLookupRepoRecentIsDistinctAndOrdered(t *testing.T) {
	ctx := context.Background()
	repo := openTestDB(t)

	base := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	insert := func(query string, at time.Time) {
		require.NoError(t, repo.Insert(ctx, repository.Lookup{
			ID: uuid.NewString(), Query: query, CEP: query, City: "Natal", State: "RN", LookedUpAt: at,
		}))
	}
	insert("59040240", base)
	insert("01001000", base.Add(time.Minute))
	insert("59040240", base.Add(2*time.Minute))
	insert("20040002", base.Add(3*time.Minute))

	recent, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, "20040002", recent[0].Query)
	require.Equal(t, "59040240", recent[1].Query)
	require.Equal(t, base.Add(2*time.Minute), recent[1].LookedUpAt)
	require.Equal(t, "01001000", recent[2].Query)

	limited, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, n)
}
