package verification

import (
	"errors"

	"github.com/RMahshie/roomcheck/internal/fingerprint"
)

var (
	// ErrInvalidInput marks a request missing required fields
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyDataset means no classroom has reference fingerprints
	ErrEmptyDataset = fingerprint.ErrEmptyDataset
	// ErrInvalidK means the classifier neighbor count is misconfigured
	ErrInvalidK = fingerprint.ErrInvalidK
	// ErrComputation wraps unexpected numeric failures
	ErrComputation = errors.New("computation failed")
)

// IsConfigurationError reports whether err comes from classifier data or settings
// rather than from the request
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrEmptyDataset) || errors.Is(err, ErrInvalidK)
}
