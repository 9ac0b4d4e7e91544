package tree

import (
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"
)

// Tree is a D-dimensional region-octree over a fixed-capacity batch of
// particles. A Tree is rebuilt in bulk with UpdateTree and queried with
// FindNeighbors / FindNeighborsPeriodic; it supports no incremental update
// and no concurrent mutation or query against the same instance
// The zero value is not usable - construct with New.
type Tree struct {
	dim     int
	nsub    int
	reserve int
	size    int

	bodies []bodyNode

	root     *cellNode
	freeCell *cellNode
	firstBuild bool

	rsize float64

	boxSides []float64 // periodic box sides; set by FindNeighborsPeriodic

	dup *dupIndex
}

// New allocates a Tree of dimension dim with capacity for reserve
// particles. dim must be >= 1 and reserve >= 1; construction-time
// misconfiguration is reported as an error rather than a panic, since -
// unlike the bounds-checked accessors below, which guard against a caller
// misusing an already-built tree and must abort - this is an ordinary
// configuration mistake caught before any tree state exists.
func New(dim, reserve int) (*Tree, error) {
	if dim < 1 {
		return nil, errors.Errorf("nstree: dim must be >= 1, got %d", dim)
	}
	if reserve < 1 {
		return nil, errors.Errorf("nstree: reserve must be >= 1, got %d", reserve)
	}
	log.Debug.Printf("nstree.New(dim=%d, reserve=%d)", dim, reserve)

	t := &Tree{
		dim:        dim,
		nsub:       1 << uint(dim),
		reserve:    reserve,
		bodies:     make([]bodyNode, reserve),
		firstBuild: true,
		rsize:      1,
		dup:        newDupIndex(),
	}
	for i := range t.bodies {
		t.bodies[i].id = uint32(i)
		t.bodies[i].position = make([]float64, dim)
	}
	return t, nil
}

// Dim returns the tree's fixed dimensionality.
func (t *Tree) Dim() int { return t.dim }

// Reserve returns the tree's fixed capacity.
func (t *Tree) Reserve() int { return t.reserve }

// Size returns the number of currently active particles.
func (t *Tree) Size() int { return t.size }

// Resize sets the number of active particles. It is fatal if n exceeds the
// tree's reserve.
func (t *Tree) Resize(n int) {
	if n > t.reserve || n < 0 {
		fatal(ErrCapacityExceeded, "resize(%d) exceeds reserve %d", n, t.reserve)
	}
	t.size = n
}

func (t *Tree) checkID(id int) {
	if id < 0 || id >= t.size {
		fatal(ErrIndexOutOfRange, "id %d out of range [0, %d)", id, t.size)
	}
}

func (t *Tree) checkAxis(axis int) {
	if axis < 0 || axis >= t.dim {
		fatal(ErrIndexOutOfRange, "axis %d out of range [0, %d)", axis, t.dim)
	}
}

// SetPosition writes one coordinate of particle id's position.
func (t *Tree) SetPosition(id, axis int, x float64) {
	t.checkID(id)
	t.checkAxis(axis)
	t.bodies[id].position[axis] = x
}

// GetPosition reads one coordinate of particle id's position.
func (t *Tree) GetPosition(id, axis int) float64 {
	t.checkID(id)
	t.checkAxis(axis)
	return t.bodies[id].position[axis]
}

// SetSearchRadius writes particle id's search radius, used in SYMMETRY mode
// queries. r must be non-negative; this is not checked. The body inclusion
// test compares against r*r, while cell pruning uses r as given.
func (t *Tree) SetSearchRadius(id int, r float64) {
	t.checkID(id)
	t.bodies[id].radius = r
}

// Move transfers ownership of src's root, particle buffer, recycle pool,
// duplicate index, and periodic-box vector to t, leaving src in an empty,
// destructible state. Self-move is a no-op.
func (t *Tree) Move(src *Tree) {
	if t == src {
		return
	}
	*t = *src
	*src = Tree{firstBuild: true, rsize: 1, dup: newDupIndex()}
}
