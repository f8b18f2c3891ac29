package fingerprint

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Room is a classroom label with its recorded fingerprint samples
type Room struct {
	Label   string
	Samples []Vector
}

// Dataset is the reference table of classroom fingerprints. Rooms are kept in
// lexicographic label order and samples in file order, which fixes the
// ordering used to break distance ties.
type Dataset struct {
	rooms []Room
	dim   int
}

// NewDataset validates samples against order and builds a dataset
func NewDataset(order *APOrder, samples map[string][][]float64) (*Dataset, error) {
	labels := make([]string, 0, len(samples))
	for label := range samples {
		if strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("dataset contains an empty classroom label")
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)

	ds := &Dataset{rooms: make([]Room, 0, len(labels)), dim: order.Len()}
	for _, label := range labels {
		room := Room{Label: label, Samples: make([]Vector, 0, len(samples[label]))}
		for i, s := range samples[label] {
			if len(s) != order.Len() {
				return nil, fmt.Errorf("classroom %q sample %d has %d values, want %d: %w",
					label, i, len(s), order.Len(), ErrDimensionMismatch)
			}
			room.Samples = append(room.Samples, Vector(append([]float64(nil), s...)))
		}
		ds.rooms = append(ds.rooms, room)
	}
	return ds, nil
}

// Format identifies the encoding of a dataset document
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath guesses the encoding from a file name or object key
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseDataset decodes a classroom -> samples document and validates it against order
func ParseDataset(data []byte, format Format, order *APOrder) (*Dataset, error) {
	raw := map[string][][]float64{}

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML dataset: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse JSON dataset: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", format)
	}

	return NewDataset(order, raw)
}

// Rooms returns the classrooms in tie-break order
func (d *Dataset) Rooms() []Room { return d.rooms }

// Dim returns the vector dimension every sample has
func (d *Dataset) Dim() int { return d.dim }

// SampleCount returns the total number of samples across all classrooms
func (d *Dataset) SampleCount() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, r := range d.rooms {
		n += len(r.Samples)
	}
	return n
}
