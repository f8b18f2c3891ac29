package memory

import (
	"context"
	"testing"
	"time"

	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptRepository(t *testing.T) {
	repo := NewAttemptRepository()
	ctx := context.Background()
	now := time.Now()

	first := &models.Attempt{ID: uuid.New().String(), SessionID: "session-1", Check: "geo", Success: true, Detail: "distance=116m", CreatedAt: now}
	second := &models.Attempt{ID: uuid.New().String(), SessionID: "session-1", Check: "fingerprint", Success: false, CreatedAt: now.Add(time.Second)}
	other := &models.Attempt{ID: uuid.New().String(), SessionID: "session-2", Check: "ssid", Success: true, CreatedAt: now}

	for _, a := range []*models.Attempt{first, second, other} {
		require.NoError(t, repo.Create(ctx, a))
	}

	got, err := repo.GetByID(ctx, uuid.MustParse(first.ID))
	require.NoError(t, err)
	assert.Equal(t, first.Detail, got.Detail)

	list, err := repo.ListBySessionID(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, first.ID, list[1].ID)

	list, err = repo.ListBySessionID(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestAttemptRepository_EvictsOldest(t *testing.T) {
	repo := NewAttemptRepositoryWithLimit(2)
	ctx := context.Background()
	now := time.Now()

	ids := make([]string, 3)
	for i := range ids {
		ids[i] = uuid.New().String()
		require.NoError(t, repo.Create(ctx, &models.Attempt{
			ID:        ids[i],
			SessionID: "session-1",
			Check:     "geo",
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}))
	}

	assert.Equal(t, 2, repo.Len())

	_, err := repo.GetByID(ctx, uuid.MustParse(ids[0]))
	assert.ErrorIs(t, err, repository.ErrNotFound)

	list, err := repo.ListBySessionID(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ID)
	assert.Equal(t, ids[1], list[1].ID)
}

func TestAttemptRepository_RewriteKeepsSlot(t *testing.T) {
	repo := NewAttemptRepositoryWithLimit(2)
	ctx := context.Background()
	id := uuid.New().String()

	require.NoError(t, repo.Create(ctx, &models.Attempt{ID: id, Check: "geo"}))
	require.NoError(t, repo.Create(ctx, &models.Attempt{ID: id, Check: "geo", Success: true}))
	require.NoError(t, repo.Create(ctx, &models.Attempt{ID: uuid.New().String(), Check: "ssid"}))

	assert.Equal(t, 2, repo.Len())
	got, err := repo.GetByID(ctx, uuid.MustParse(id))
	require.NoError(t, err)
	assert.True(t, got.Success)
}

func TestNewAttemptRepositoryWithLimit_NonPositive(t *testing.T) {
	repo := NewAttemptRepositoryWithLimit(0)
	assert.Equal(t, DefaultMaxAttempts, repo.limit)
}
