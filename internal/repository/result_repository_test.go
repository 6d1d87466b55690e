package repository

import (
	"context"
	"ctchen222/tictactoe-cli/internal/db"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResultRepository(t *testing.T) ResultRepository {
	t.Helper()
	pool, err := db.ConnectSQLite(context.Background(), filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { pool.Close() })
	return NewResultRepository(pool)
}

func TestResultRepository_SaveAndRecent(t *testing.T) {
	ctx := context.Background()
	repo := newResultRepository(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	results := []MatchResult{
		{ID: "a", Mode: "solo", PlayerX: "Ana", PlayerO: "Computer", Winner: "Ana", Moves: 5, PlayedAt: base},
		{ID: "b", Mode: "multiplayer", PlayerX: "Ana", PlayerO: "Bo", Winner: "", Moves: 9, PlayedAt: base.Add(time.Minute)},
		{ID: "c", Mode: "solo", PlayerX: "Cy", PlayerO: "Computer", Winner: "Computer", Moves: 6, PlayedAt: base.Add(2 * time.Minute)},
	}
	for i := range results {
		require.NoError(t, repo.Save(ctx, &results[i]))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, results[2], got[0])
	assert.Equal(t, results[1], got[1])
}

func TestResultRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := newResultRepository(t)
	r := &MatchResult{ID: "dup", Mode: "solo", PlayerX: "Ana", PlayerO: "Computer", Moves: 9, PlayedAt: time.Now()}

	require.NoError(t, repo.Save(ctx, r))
	assert.ErrorContains(t, repo.Save(ctx, r), "failed to insert match result")
}

func TestResultRepository_Empty(t *testing.T) {
	got, err := newResultRepository(t).Recent(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}
