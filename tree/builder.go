package tree

import (
	"math"

	"github.com/grailbio/base/log"

	"github.com/StaticTaku/NeighborParticleSearchTree/geom"
)

// UpdateTree rebuilds the index over the currently active particles
// it drains the previous tree into the recycle pool, allocates
// a fresh root, size it to enclose every active body, insert the bodies in
// id order, and thread the result for stackless range-query traversal.
func (t *Tree) UpdateTree() {
	log.Debug.Printf("nstree: UpdateTree start (size=%d)", t.size)

	if !t.firstBuild {
		t.drainTree()
	}
	t.firstBuild = false
	t.dup.reset()

	t.root = t.allocCell()
	for k := range t.root.center {
		t.root.center[k] = 0
	}
	t.expandBox()

	for i := 0; i < t.size; i++ {
		b := &t.bodies[i]
		if dupID, isDup := t.dup.checkAndAdd(b.id, b.position); isDup {
			fatal(ErrCoincidentParticles, "bodies %d and %d share position %v", dupID, b.id, b.position)
		}
		t.loadBody(b)
	}

	threadTree(t.root, nil)
	log.Debug.Printf("nstree: UpdateTree finish")
}

// expandBox computes rsize, the smallest power-of-two multiple of 1 such
// that rsize >= 2*dmax, where dmax is the largest absolute coordinate of
// any active body along any axis (root is always centered at the origin,
// the root is always centered at the origin).
func (t *Tree) expandBox() {
	dmax := 0.0
	for i := 0; i < t.size; i++ {
		for k := 0; k < t.dim; k++ {
			if d := math.Abs(t.bodies[i].position[k]); d > dmax {
				dmax = d
			}
		}
	}
	rsize := 1.0
	for rsize < 2*dmax {
		rsize *= 2
	}
	t.rsize = rsize
}

// loadBody inserts one body into the tree, splitting a leaf slot into a
// new cell whenever a collision is found, and propagating
// p.radius into every cell's maxRadius along the descent path
// It is fatal if two active bodies share an identical
// position, or if the cell side underflows to zero before p finds an
// empty slot.
func (t *Tree) loadBody(p *bodyNode) {
	q := t.root
	qsize := t.rsize
	qind := subIndex(p.position, q.center, t.nsub)
	q.maxRadius = math.Max(q.maxRadius, p.radius)

	for {
		child := q.children[qind]
		if child == nil {
			q.children[qind] = p
			return
		}

		if b, ok := child.(*bodyNode); ok {
			if geom.SquaredDistance(b.position, p.position) == 0 {
				fatal(ErrCoincidentParticles, "bodies %d and %d share position %v", b.id, p.id, p.position)
			}

			c := t.allocCell()
			for k := 0; k < t.dim; k++ {
				sign := 1.0
				if p.position[k] < q.center[k] {
					sign = -1.0
				}
				c.center[k] = q.center[k] + sign*qsize/4
			}
			// Fold the resident body's radius in at split time: it is the
			// only way c.maxRadius reflects b's radius if b turns out to be
			// c's sole occupant for the rest of this rebuild.
			c.maxRadius = b.radius
			c.children[subIndex(b.position, c.center, t.nsub)] = b
			q.children[qind] = c
			child = c
		}

		q = child.(*cellNode)
		qind = subIndex(p.position, q.center, t.nsub)
		qsize /= 2
		q.maxRadius = math.Max(q.maxRadius, p.radius)
		if qsize == 0 {
			fatal(ErrTreeTooDeep, "cell size reached zero while inserting body %d", p.id)
		}
	}
}
