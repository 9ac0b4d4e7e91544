package tree

import (
	"fmt"

	baseerrors "github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
)

// Sentinel errors for the taxonomy of fatal conditions. Every
// one of them is raised through fatal() below: logged, then panicked with
// the bare sentinel itself as the panic value so a caller that chooses to
// recover can still distinguish the cause with plain equality.
var (
	// ErrCapacityExceeded is raised by Resize when n exceeds the reserve
	// passed to New.
	ErrCapacityExceeded = baseerrors.New("capacity exceeded")
	// ErrIndexOutOfRange is raised by any accessor given an id >= active
	// size or an axis >= the tree's dimension.
	ErrIndexOutOfRange = baseerrors.New("index out of range")
	// ErrCoincidentParticles is raised by UpdateTree when two active
	// bodies occupy the exact same position.
	ErrCoincidentParticles = baseerrors.New("coincident particles")
	// ErrTreeTooDeep is raised by UpdateTree if a cell side underflows to
	// zero before a body finds an empty slot.
	ErrTreeTooDeep = baseerrors.New("tree too deep")
)

// fatal logs a fatal condition - with its sentinel kind wrapped in a
// base/errors.E for a readable diagnostic line - and then panics with kind
// itself. Panicking with the bare sentinel, rather than with the wrapped
// value constructed for logging, means a caller that recovers can compare
// the panic value against ErrCapacityExceeded etc. with plain equality
// instead of depending on a particular unwrap convention.
//
// This is the core's only non-recoverable failure path: the
// index is a batch compute kernel whose inputs come from a trusted caller,
// so recovery would only mask a logic bug upstream.
func fatal(kind error, format string, args ...interface{}) {
	log.Error.Printf("%v", baseerrors.E(kind, fmt.Sprintf(format, args...)))
	panic(kind)
}
