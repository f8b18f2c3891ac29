package handlers

import (
	"context"
	"errors"

	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// AttemptHandler serves the verification audit trail
type AttemptHandler struct {
	repo repository.AttemptRepository
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(repo repository.AttemptRepository) *AttemptHandler {
	return &AttemptHandler{repo: repo}
}

// GetAttempt returns one recorded attempt
func (h *AttemptHandler) GetAttempt(ctx context.Context, req *models.GetAttemptRequest) (*models.GetAttemptResponse, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		return nil, huma.Error400BadRequest("Invalid attempt ID", err)
	}

	attempt, err := h.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, huma.Error404NotFound("Attempt not found")
	}
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to get attempt", err)
	}
	return &models.GetAttemptResponse{Body: attempt}, nil
}

// ListSessionAttempts returns the attempts recorded for a session
func (h *AttemptHandler) ListSessionAttempts(ctx context.Context, req *models.ListSessionAttemptsRequest) (*models.ListSessionAttemptsResponse, error) {
	attempts, err := h.repo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list attempts", err)
	}

	resp := &models.ListSessionAttemptsResponse{}
	resp.Body.Attempts = attempts
	return resp, nil
}
