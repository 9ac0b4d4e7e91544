package tree

import (
	"github.com/grailbio/base/log"

	"github.com/StaticTaku/NeighborParticleSearchTree/geom"
)

// Mode selects the range-query's inclusion and cell-pruning rule
// the walk uses.
type Mode uint8

const (
	// Gather includes a body iff the query ball contains it.
	Gather Mode = iota
	// Symmetry includes a body if either the query ball contains it, or
	// the body's own search ball contains the query point.
	Symmetry
)

// FindNeighbors appends (or, if clear is true, replaces) the ids of every
// active body within r of q to out, under plain (non-periodic) boundary
// conditions.
func (t *Tree) FindNeighbors(q []float64, r float64, out []uint32, mode Mode, clear bool) []uint32 {
	if clear {
		out = out[:0]
	}
	log.Debug.Printf("nstree: FindNeighbors start")
	if t.root != nil {
		out = t.walkPlain(q, r, out, mode, t.root, t.rsize)
	}
	log.Debug.Printf("nstree: FindNeighbors finish")
	return out
}

// FindNeighborsPeriodic is FindNeighbors under periodic (toroidal) boundary
// conditions with the given per-axis box side lengths, which are stored on
// the tree for this and subsequent periodic queries.
func (t *Tree) FindNeighborsPeriodic(q []float64, r float64, box []float64, out []uint32, mode Mode, clear bool) []uint32 {
	if clear {
		out = out[:0]
	}
	t.boxSides = append(t.boxSides[:0], box...)
	log.Debug.Printf("nstree: FindNeighborsPeriodic start")
	if t.root != nil {
		out = t.walkPeriodic(q, r, out, mode, t.root, t.rsize)
	}
	log.Debug.Printf("nstree: FindNeighborsPeriodic finish")
	return out
}

// walkPlain is the non-periodic range-query walk. It always uses the
// plain proximity helper, for both the radius arm and (in Symmetry mode)
// the max-radius arm: this walker never receives a periodic box, so the
// periodic helper has nothing valid to consult either arm against.
func (t *Tree) walkPlain(q []float64, r float64, out []uint32, mode Mode, p *cellNode, s float64) []uint32 {
	for c := p.more; c != p.nxt; c = c.next() {
		switch v := c.(type) {
		case *cellNode:
			halfSide := s / 2
			near := geom.BoxSphereOverlap(q, v.center, halfSide, r)
			if !near && mode == Symmetry {
				near = geom.BoxSphereOverlap(q, v.center, halfSide, v.maxRadius)
			}
			if near {
				out = t.walkPlain(q, r, out, mode, v, halfSide)
			}
		case *bodyNode:
			d2 := geom.SquaredDistance(q, v.position)
			include := d2 <= r*r
			if !include && mode == Symmetry {
				include = d2 <= v.radius*v.radius
			}
			if include {
				out = append(out, v.id)
			}
		}
	}
	return out
}

// walkPeriodic is the periodic-boundary range-query walk. It always uses
// the periodic proximity helper, for both the radius
// arm and the max-radius arm.
func (t *Tree) walkPeriodic(q []float64, r float64, out []uint32, mode Mode, p *cellNode, s float64) []uint32 {
	for c := p.more; c != p.nxt; c = c.next() {
		switch v := c.(type) {
		case *cellNode:
			halfSide := s / 2
			near := geom.PeriodicBoxSphereOverlap(q, v.center, halfSide, r, t.boxSides)
			if !near && mode == Symmetry {
				near = geom.PeriodicBoxSphereOverlap(q, v.center, halfSide, v.maxRadius, t.boxSides)
			}
			if near {
				out = t.walkPeriodic(q, r, out, mode, v, halfSide)
			}
		case *bodyNode:
			d2 := geom.PeriodicSquaredDistance(q, v.position, t.boxSides)
			include := d2 <= r*r
			if !include && mode == Symmetry {
				include = d2 <= v.radius*v.radius
			}
			if include {
				out = append(out, v.id)
			}
		}
	}
	return out
}
