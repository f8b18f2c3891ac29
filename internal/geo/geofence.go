package geo

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances
const EarthRadiusMeters = 6371000.0

// Coordinate is a reported position in decimal degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Result is the outcome of a geofence evaluation
type Result struct {
	WithinRadius   bool
	Distance       float64 // unrounded, meters
	DistanceMeters int     // rounded to the nearest meter for reporting
}

// Evaluator classifies coordinates as inside or outside a circular geofence
type Evaluator struct {
	anchor       Coordinate
	radiusMeters float64
}

// NewEvaluator creates a geofence around anchor with the given radius in meters
func NewEvaluator(anchor Coordinate, radiusMeters float64) *Evaluator {
	return &Evaluator{anchor: anchor, radiusMeters: radiusMeters}
}

// Anchor returns the geofence center
func (e *Evaluator) Anchor() Coordinate { return e.anchor }

// RadiusMeters returns the geofence radius
func (e *Evaluator) RadiusMeters() float64 { return e.radiusMeters }

// Evaluate measures the distance from coord to the anchor. The boundary is inclusive.
func (e *Evaluator) Evaluate(coord Coordinate) Result {
	d := HaversineDistance(coord, e.anchor)
	return Result{
		WithinRadius:   d <= e.radiusMeters,
		Distance:       d,
		DistanceMeters: int(math.Round(d)),
	}
}

// HaversineDistance returns the great-circle distance between a and b in meters
func HaversineDistance(a, b Coordinate) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
