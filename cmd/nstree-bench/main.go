// Command nstree-bench builds a tree over synthetically generated
// particle positions and reports query result counts and timings. It is a
// thin demo/benchmark shell around the tree package - not the test harness
// and not a particle simulator - in
// the same spirit as cmd/bio-bam-gindex is a thin shell around the bam
// package.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/StaticTaku/NeighborParticleSearchTree/tree"
)

var (
	dim      = flag.Int("dim", 3, "number of spatial dimensions")
	n        = flag.Int("n", 100000, "number of particles")
	radius   = flag.Float64("radius", 1.0, "query radius")
	periodic = flag.Bool("periodic", false, "use periodic boundary conditions")
	symmetry = flag.Bool("symmetry", false, "use symmetric-interaction query mode")
	boxSide  = flag.Float64("box-side", 1000.0, "side of the cube particles are seeded in, and the periodic box side when -periodic is set")
	seed     = flag.Int64("seed", 1, "random seed for synthetic particle generation")
)

func main() {
	shutdown := grail.Init()
	defer shutdown()

	t, err := tree.New(*dim, *n)
	if err != nil {
		log.Fatalf("tree.New: %v", err)
	}

	rnd := rand.New(rand.NewSource(*seed))
	t.Resize(*n)
	for i := 0; i < *n; i++ {
		for k := 0; k < *dim; k++ {
			t.SetPosition(i, k, (rnd.Float64()-0.5)**boxSide)
		}
		if *symmetry {
			t.SetSearchRadius(i, rnd.Float64()**radius)
		}
	}

	buildStart := time.Now()
	t.UpdateTree()
	log.Printf("UpdateTree: %d particles in %v", *n, time.Since(buildStart))

	mode := tree.Gather
	if *symmetry {
		mode = tree.Symmetry
	}

	q := make([]float64, *dim)
	var out []uint32

	queryStart := time.Now()
	if *periodic {
		box := make([]float64, *dim)
		for k := range box {
			box[k] = *boxSide
		}
		out = t.FindNeighborsPeriodic(q, *radius, box, out, mode, true)
	} else {
		out = t.FindNeighbors(q, *radius, out, mode, true)
	}
	log.Printf("query: %d matches in %v", len(out), time.Since(queryStart))
}
