package repository

import (
	"context"
	"errors"

	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/google/uuid"
)

// ErrNotFound is returned when an attempt does not exist
var ErrNotFound = errors.New("attempt not found")

// AttemptRepository defines the interface for the verification audit trail
type AttemptRepository interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Attempt, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]*models.Attempt, error)
}
