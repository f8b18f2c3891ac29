package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/google/uuid"
)

// DefaultMaxAttempts bounds the in-memory audit trail
const DefaultMaxAttempts = 10000

// AttemptRepository keeps the most recent attempts in process memory. Used when no database is configured.
// Once full, the oldest recorded attempt is evicted.
type AttemptRepository struct {
	mu       sync.RWMutex
	limit    int
	order    []string // insertion order, oldest first
	attempts map[string]models.Attempt
}

func NewAttemptRepository() repository.AttemptRepository {
	return NewAttemptRepositoryWithLimit(DefaultMaxAttempts)
}

// NewAttemptRepositoryWithLimit creates a store holding at most limit attempts.
// A non-positive limit falls back to DefaultMaxAttempts.
func NewAttemptRepositoryWithLimit(limit int) *AttemptRepository {
	if limit <= 0 {
		limit = DefaultMaxAttempts
	}
	return &AttemptRepository{
		limit:    limit,
		attempts: make(map[string]models.Attempt),
	}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.attempts[attempt.ID]; !exists {
		r.order = append(r.order, attempt.ID)
	}
	r.attempts[attempt.ID] = *attempt

	for len(r.order) > r.limit {
		delete(r.attempts, r.order[0])
		r.order = r.order[1:]
	}
	return nil
}

// Len returns the number of attempts currently held
func (r *AttemptRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.attempts)
}

func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempt, ok := r.attempts[id.String()]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &attempt, nil
}

func (r *AttemptRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.Attempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attempts := []*models.Attempt{}
	for _, a := range r.attempts {
		if a.SessionID == sessionID {
			a := a
			attempts = append(attempts, &a)
		}
	}
	sort.Slice(attempts, func(i, j int) bool {
		if attempts[i].CreatedAt.Equal(attempts[j].CreatedAt) {
			return attempts[i].ID > attempts[j].ID
		}
		return attempts[i].CreatedAt.After(attempts[j].CreatedAt)
	})
	return attempts, nil
}
