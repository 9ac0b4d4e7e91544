package tree

import (
	"encoding/binary"
	"math"

	farm "github.com/dgryski/go-farm"

	"github.com/StaticTaku/NeighborParticleSearchTree/geom"
)

// numDupShards mirrors encoding/bamprovider's concurrentMap sharding count;
// this index isn't concurrent, but the shard count keeps each shard's
// bucket small even for large reserves.
const numDupShards = 1024

// dupEntry is one recorded position in a dupIndex shard.
type dupEntry struct {
	id       uint32
	position []float64
}

type dupShard struct {
	entries map[uint64][]dupEntry
}

// dupIndex is a sharded hash index over body positions, used to reject an
// obviously-coincident insertion in O(1) expected time before loadBody's
// exact O(log n) descent-time check would otherwise catch it. It is
// rebuilt from scratch on every
// UpdateTree call and never consulted for correctness on its own - a hash
// collision between two distinct positions is not treated as a duplicate.
type dupIndex struct {
	shards [numDupShards]dupShard
}

func newDupIndex() *dupIndex {
	d := &dupIndex{}
	for i := range d.shards {
		d.shards[i].entries = make(map[uint64][]dupEntry)
	}
	return d
}

func (d *dupIndex) reset() {
	for i := range d.shards {
		d.shards[i].entries = make(map[uint64][]dupEntry)
	}
}

// hashPosition mixes a position vector's bits axis by axis, the way
// fusion/kmer_index.go mixes a kmer's integer bits with
// farm.Hash64WithSeed - folding the running hash in as the seed for the
// next axis, rather than hashing the whole vector as one byte string.
func hashPosition(pos []float64) uint64 {
	var buf [8]byte
	h := uint64(0)
	for _, x := range pos {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
		h = farm.Hash64WithSeed(buf[:], h)
	}
	return h
}

// checkAndAdd reports whether pos exactly matches a position already
// recorded in the index (a genuine coincident-position violation), and
// otherwise records it. id is the candidate body's id, used only for
// diagnostics.
func (d *dupIndex) checkAndAdd(id uint32, pos []float64) (dupID uint32, isDup bool) {
	h := hashPosition(pos)
	shard := &d.shards[h%numDupShards]
	for _, e := range shard.entries[h] {
		if geom.SquaredDistance(e.position, pos) == 0 {
			return e.id, true
		}
	}
	shard.entries[h] = append(shard.entries[h], dupEntry{id: id, position: pos})
	return 0, false
}
