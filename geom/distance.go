package geom

import "math"

// SquaredDistance returns the squared Euclidean distance between a and b,
// which must have the same length. It is the hot-path primitive used by
// every leaf test in the tree walker, so it avoids math.Sqrt entirely.
func SquaredDistance(a, b []float64) float64 {
	var d2 float64
	for k := range a {
		d := a[k] - b[k]
		d2 += d * d
	}
	return d2
}

// PeriodicDelta returns the minimum-image signed displacement a-b along one
// axis of side length box. box must be > 0. At most one box length is added
// or subtracted, so the result lies in [-box/2, box/2] only when
// |a-b| <= 3*box/2; a-b == -box/2 is returned unchanged.
func PeriodicDelta(a, b, box float64) float64 {
	d := a - b
	half := 0.5 * box
	if d > half {
		d -= box
	} else if d < -half {
		d += box
	}
	return d
}

// PeriodicSquaredDistance is SquaredDistance under the minimum-image
// convention: each axis difference is replaced by PeriodicDelta before
// squaring. a, b, and box must have the same length.
func PeriodicSquaredDistance(a, b, box []float64) float64 {
	var d2 float64
	for k := range a {
		d := PeriodicDelta(a[k], b[k], box[k])
		d2 += d * d
	}
	return d2
}

// BoxSphereOverlap reports whether the axis-aligned cube centered at
// center with half-side halfSide can contain any point within radius of q.
// This is an L-infinity over-approximation of the true spherical reach: it
// never rejects a cube that actually overlaps the query ball, but may
// accept a few cubes that only overlap the ball's bounding box.
func BoxSphereOverlap(q, center []float64, halfSide, radius float64) bool {
	farLen := halfSide + radius
	for k := range q {
		if math.Abs(q[k]-center[k]) > farLen {
			return false
		}
	}
	return true
}

// PeriodicBoxSphereOverlap is BoxSphereOverlap with each axis difference
// taken under the minimum-image convention for the given box sides.
func PeriodicBoxSphereOverlap(q, center []float64, halfSide, radius float64, box []float64) bool {
	farLen := halfSide + radius
	for k := range q {
		if math.Abs(PeriodicDelta(q[k], center[k], box[k])) > farLen {
			return false
		}
	}
	return true
}
