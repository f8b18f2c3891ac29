package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/RMahshie/roomcheck/internal/fingerprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockS3Service implements S3Service for testing
type MockS3Service struct {
	mock.Mock
}

func (m *MockS3Service) DownloadFile(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func testOrder(t *testing.T) *fingerprint.APOrder {
	t.Helper()
	order, err := fingerprint.NewAPOrder([]string{"AA:BB:CC:01", "AA:BB:CC:02", "AA:BB:CC:03"})
	require.NoError(t, err)
	return order
}

func TestDatasetLoader_FromObjectStorage(t *testing.T) {
	mockS3 := &MockS3Service{}
	mockS3.On("DownloadFile", mock.Anything, "datasets/fingerprints.yaml").
		Return([]byte("RoomA:\n  - [-40, -70, -100]\n"), nil)

	ds, err := NewDatasetLoader(mockS3, "datasets/fingerprints.yaml", "ignored.json").Load(context.Background(), testOrder(t))

	require.NoError(t, err)
	assert.Equal(t, 1, ds.SampleCount())
	mockS3.AssertExpectations(t)
}

func TestDatasetLoader_ObjectStorageError(t *testing.T) {
	mockS3 := &MockS3Service{}
	mockS3.On("DownloadFile", mock.Anything, "missing.json").Return(nil, assert.AnError)

	_, err := NewDatasetLoader(mockS3, "missing.json", "").Load(context.Background(), testOrder(t))

	assert.ErrorIs(t, err, assert.AnError)
}

func TestDatasetLoader_KeyWithoutStorage(t *testing.T) {
	_, err := NewDatasetLoader(nil, "datasets/fingerprints.json", "").Load(context.Background(), testOrder(t))
	assert.Error(t, err)
}

func TestDatasetLoader_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"RoomA": [[-40, -70, -100]], "RoomB": [[-90, -90, -90], [-85, -92, -90]]}`), 0o644))

	ds, err := NewDatasetLoader(nil, "", path).Load(context.Background(), testOrder(t))

	require.NoError(t, err)
	assert.Equal(t, 3, ds.SampleCount())
}

func TestDatasetLoader_MissingFileYieldsEmptyDataset(t *testing.T) {
	ds, err := NewDatasetLoader(nil, "", filepath.Join(t.TempDir(), "absent.json")).Load(context.Background(), testOrder(t))

	require.NoError(t, err)
	assert.Equal(t, 0, ds.SampleCount())
}

func TestDatasetLoader_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"RoomA": [[-40, -70]]}`), 0o644))

	_, err := NewDatasetLoader(nil, "", path).Load(context.Background(), testOrder(t))

	assert.ErrorIs(t, err, fingerprint.ErrDimensionMismatch)
}
