package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RMahshie/roomcheck/internal/repository"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/google/uuid"
)

// PostgresAttemptRepository implements AttemptRepository for PostgreSQL
type PostgresAttemptRepository struct {
	db *sql.DB
}

// NewPostgresAttemptRepository creates a new PostgreSQL attempt repository
func NewPostgresAttemptRepository(db *sql.DB) repository.AttemptRepository {
	return &PostgresAttemptRepository{db: db}
}

// Create inserts a new attempt record
func (r *PostgresAttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	query := `
		INSERT INTO verification_attempts (id, session_id, check_name, success, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		nullString(attempt.SessionID),
		attempt.Check,
		attempt.Success,
		nullString(attempt.Detail),
		attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

// GetByID retrieves an attempt by ID
func (r *PostgresAttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attempt, error) {
	query := `
		SELECT id, session_id, check_name, success, detail, created_at
		FROM verification_attempts
		WHERE id = $1`

	attempt, err := scanAttempt(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return attempt, nil
}

// ListBySessionID retrieves the attempts of a session, newest first
func (r *PostgresAttemptRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.Attempt, error) {
	query := `
		SELECT id, session_id, check_name, success, detail, created_at
		FROM verification_attempts
		WHERE session_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts := []*models.Attempt{}
	for rows.Next() {
		attempt, err := scanAttempt(rows)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAttempt(row scanner) (*models.Attempt, error) {
	var attempt models.Attempt
	var sessionID, detail sql.NullString

	err := row.Scan(
		&attempt.ID,
		&sessionID,
		&attempt.Check,
		&attempt.Success,
		&detail,
		&attempt.CreatedAt)
	if err != nil {
		return nil, err
	}

	if sessionID.Valid {
		attempt.SessionID = sessionID.String
	}
	if detail.Valid {
		attempt.Detail = detail.String
	}
	return &attempt, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
