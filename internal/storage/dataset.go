package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/RMahshie/roomcheck/internal/fingerprint"
	"github.com/rs/zerolog/log"
)

// DatasetLoader reads the reference fingerprint dataset from object storage
// when a key is configured, otherwise from a local file
type DatasetLoader struct {
	s3   S3Service
	key  string
	path string
}

// NewDatasetLoader creates a loader. s3 may be nil when key is empty.
func NewDatasetLoader(s3 S3Service, key, path string) *DatasetLoader {
	return &DatasetLoader{s3: s3, key: key, path: path}
}

// Load fetches and validates the dataset against order. A missing local file
// yields an empty dataset so the service can start without fingerprints.
func (l *DatasetLoader) Load(ctx context.Context, order *fingerprint.APOrder) (*fingerprint.Dataset, error) {
	if l.key != "" {
		if l.s3 == nil {
			return nil, fmt.Errorf("dataset key %s configured without object storage", l.key)
		}
		data, err := l.s3.DownloadFile(ctx, l.key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset: %w", err)
		}
		log.Info().Str("key", l.key).Int("bytes", len(data)).Msg("Loaded fingerprint dataset from object storage")
		return fingerprint.ParseDataset(data, fingerprint.FormatFromPath(l.key), order)
	}

	if l.path == "" {
		log.Warn().Msg("No fingerprint dataset configured, fingerprint checks will fail")
		return fingerprint.NewDataset(order, nil)
	}

	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", l.path).Msg("Fingerprint dataset not found, starting with an empty dataset")
		return fingerprint.NewDataset(order, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", l.path, err)
	}
	log.Info().Str("path", l.path).Int("bytes", len(data)).Msg("Loaded fingerprint dataset from file")
	return fingerprint.ParseDataset(data, fingerprint.FormatFromPath(l.path), order)
}
