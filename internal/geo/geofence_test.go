package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var campus = Coordinate{Latitude: 30.681063, Longitude: 76.669967}

func TestEvaluate_InsideCampus(t *testing.T) {
	e := NewEvaluator(campus, 350)

	res := e.Evaluate(Coordinate{Latitude: 30.682000, Longitude: 76.670500})

	assert.True(t, res.WithinRadius)
	assert.InDelta(t, 110, res.DistanceMeters, 10)
}

func TestEvaluate_BoundaryIsInclusive(t *testing.T) {
	point := Coordinate{Latitude: 30.684000, Longitude: 76.672000}
	d := HaversineDistance(point, campus)

	assert.True(t, NewEvaluator(campus, d).Evaluate(point).WithinRadius, "distance equal to radius should pass")
	assert.False(t, NewEvaluator(campus, d-1e-6).Evaluate(point).WithinRadius, "distance just over radius should fail")
}

func TestEvaluate_FarAway(t *testing.T) {
	e := NewEvaluator(campus, 350)

	res := e.Evaluate(Coordinate{Latitude: 28.6139, Longitude: 77.2090})

	assert.False(t, res.WithinRadius)
	assert.Greater(t, res.DistanceMeters, 200000)
}

func TestHaversineDistance(t *testing.T) {
	points := []Coordinate{
		campus,
		{Latitude: 0, Longitude: 0},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 51.5074, Longitude: -0.1278},
	}

	for _, a := range points {
		assert.Equal(t, 0.0, HaversineDistance(a, a))
		for _, b := range points {
			assert.InDelta(t, HaversineDistance(a, b), HaversineDistance(b, a), 1e-6)
		}
	}

	// one degree of latitude along a meridian
	assert.InDelta(t, 111195, HaversineDistance(Coordinate{0, 0}, Coordinate{1, 0}), 1)
}
