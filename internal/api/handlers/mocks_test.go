package handlers

import (
	"context"

	"github.com/RMahshie/roomcheck/internal/verification"
	"github.com/RMahshie/roomcheck/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVerificationService implements verification.Service for testing
type MockVerificationService struct {
	mock.Mock
}

func (m *MockVerificationService) VerifyGeo(ctx context.Context, req verification.GeoRequest) (*verification.GeoResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*verification.GeoResult)
	return res, args.Error(1)
}

func (m *MockVerificationService) VerifySSID(ctx context.Context, req verification.SSIDRequest) (*verification.SSIDResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*verification.SSIDResult)
	return res, args.Error(1)
}

func (m *MockVerificationService) VerifyWifiFingerprint(ctx context.Context, req verification.FingerprintRequest) (*verification.FingerprintResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*verification.FingerprintResult)
	return res, args.Error(1)
}

func (m *MockVerificationService) VerifyHotspot(ctx context.Context, clientIP string) (*verification.HotspotResult, error) {
	args := m.Called(ctx, clientIP)
	res, _ := args.Get(0).(*verification.HotspotResult)
	return res, args.Error(1)
}

func (m *MockVerificationService) ReferenceSamples() int {
	args := m.Called()
	return args.Int(0)
}

// MockAttemptRepository implements repository.AttemptRepository for testing
type MockAttemptRepository struct {
	mock.Mock
}

func (m *MockAttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

func (m *MockAttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Attempt, error) {
	args := m.Called(ctx, id)
	attempt, _ := args.Get(0).(*models.Attempt)
	return attempt, args.Error(1)
}

func (m *MockAttemptRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*models.Attempt, error) {
	args := m.Called(ctx, sessionID)
	attempts, _ := args.Get(0).([]*models.Attempt)
	return attempts, args.Error(1)
}
