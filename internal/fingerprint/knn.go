package fingerprint

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultK is the neighbor count used when none is configured
const DefaultK = 3

var (
	// ErrEmptyDataset is returned when no classroom has any samples
	ErrEmptyDataset = errors.New("reference dataset has no samples")
	// ErrInvalidK is returned for a non-positive neighbor count
	ErrInvalidK = errors.New("k must be a positive integer")
	// ErrDimensionMismatch is returned when vectors of different lengths are compared
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrNonFiniteDistance is returned when a vector holds NaN or infinite values
	ErrNonFiniteDistance = errors.New("non-finite distance")
)

// Neighbor is one reference sample close to the input vector
type Neighbor struct {
	Label       string
	SampleIndex int
	Distance    float64
}

// Classification is the predicted classroom with the neighbors that voted for it
type Classification struct {
	Label     string
	K         int // effective k after clamping to the sample count
	Neighbors []Neighbor
}

// Classifier predicts a classroom by k-nearest-neighbor vote over a dataset
type Classifier struct {
	dataset *Dataset
	k       int
}

// NewClassifier creates a classifier; k < 1 is rejected
func NewClassifier(dataset *Dataset, k int) (*Classifier, error) {
	if k < 1 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInvalidK)
	}
	return &Classifier{dataset: dataset, k: k}, nil
}

// K returns the configured neighbor count
func (c *Classifier) K() int { return c.k }

// Dataset returns the reference dataset
func (c *Classifier) Dataset() *Dataset { return c.dataset }

// Classify finds the nearest samples to v and returns the majority label
func (c *Classifier) Classify(v Vector) (*Classification, error) {
	return Classify(v, c.dataset, c.k)
}

// Classify runs a full linear scan over dataset. Distance ties keep dataset order
// (label order, then sample order). k larger than the sample count is clamped.
// Vote ties go to the label with the smallest summed neighbor distance, then
// the lexicographically smallest label.
func Classify(v Vector, dataset *Dataset, k int) (*Classification, error) {
	if k < 1 {
		return nil, fmt.Errorf("k=%d: %w", k, ErrInvalidK)
	}
	total := dataset.SampleCount()
	if total == 0 {
		return nil, ErrEmptyDataset
	}
	if len(v) != dataset.Dim() {
		return nil, fmt.Errorf("input has %d values, dataset has %d: %w", len(v), dataset.Dim(), ErrDimensionMismatch)
	}

	neighbors := make([]Neighbor, 0, total)
	for _, room := range dataset.Rooms() {
		for i, sample := range room.Samples {
			d, err := Euclidean(v, sample)
			if err != nil {
				return nil, err
			}
			neighbors = append(neighbors, Neighbor{Label: room.Label, SampleIndex: i, Distance: d})
		}
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})

	if k > total {
		k = total
	}
	top := neighbors[:k]

	return &Classification{
		Label:     vote(top),
		K:         k,
		Neighbors: append([]Neighbor(nil), top...),
	}, nil
}

type tally struct {
	votes int
	sum   float64
}

func vote(neighbors []Neighbor) string {
	tallies := make(map[string]*tally)
	for _, n := range neighbors {
		t, ok := tallies[n.Label]
		if !ok {
			t = &tally{}
			tallies[n.Label] = t
		}
		t.votes++
		t.sum += n.Distance
	}

	best := ""
	var bestTally *tally
	for label, t := range tallies {
		if bestTally == nil ||
			t.votes > bestTally.votes ||
			(t.votes == bestTally.votes && t.sum < bestTally.sum) ||
			(t.votes == bestTally.votes && t.sum == bestTally.sum && label < best) {
			best, bestTally = label, t
		}
	}
	return best
}

// Euclidean returns the straight-line distance between a and b
func Euclidean(a, b Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%d vs %d values: %w", len(a), len(b), ErrDimensionMismatch)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	dist := math.Sqrt(sum)
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, fmt.Errorf("distance %v: %w", dist, ErrNonFiniteDistance)
	}
	return dist, nil
}
