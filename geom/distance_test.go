package geom_test

import (
	"math"
	"testing"

	"github.com/StaticTaku/NeighborParticleSearchTree/geom"
	"github.com/stretchr/testify/assert"
)

func TestSquaredDistance(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{3, 4, 0}
	assert.Equal(t, 25.0, geom.SquaredDistance(a, b))
}

func TestPeriodicDelta(t *testing.T) {
	cases := []struct {
		a, b, box, want float64
	}{
		{1, 99, 100, 2},    // wraps forward: 1-99 = -98 -> +2
		{99, 1, 100, -2},   // wraps backward: 99-1 = 98 -> -2
		{10, 20, 100, -10}, // no wrap needed
		{50, 0, 100, 50},   // exactly half: falls in (-half, half]
	}
	for _, c := range cases {
		got := geom.PeriodicDelta(c.a, c.b, c.box)
		assert.InDelta(t, c.want, got, 1e-9)
	}
}

func TestPeriodicSquaredDistance(t *testing.T) {
	box := []float64{100, 100, 100}
	a := []float64{1, 1, 1}
	b := []float64{99, 99, 99}
	// minimum image delta per axis is 2, so squared distance is 3*4=12
	assert.InDelta(t, 12.0, geom.PeriodicSquaredDistance(a, b, box), 1e-9)
}

func TestBoxSphereOverlap(t *testing.T) {
	center := []float64{0, 0}
	assert.True(t, geom.BoxSphereOverlap([]float64{3, 0}, center, 1, 2.5))
	assert.False(t, geom.BoxSphereOverlap([]float64{10, 0}, center, 1, 2.5))
}

func TestPeriodicBoxSphereOverlapWraps(t *testing.T) {
	box := []float64{100, 100}
	center := []float64{99, 0}
	// query at 1, box side 100: minimum-image distance is 2, well inside reach
	assert.True(t, geom.PeriodicBoxSphereOverlap([]float64{1, 0}, center, 1, 2, box))
	assert.False(t, math.IsNaN(geom.PeriodicSquaredDistance([]float64{1, 0}, center, box)))
}
