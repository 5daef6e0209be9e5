package delaunay

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNoTriangulation is returned for inputs that have no triangulation: fewer
// than three distinct points, or all of them on one line.
var ErrNoTriangulation = errors.New("no Delaunay triangulation exists for this input")

// InconsistentHullError reports a point from which no hull edge was visible.
// The input broke the general position assumptions the triangulator relies
// on.
type InconsistentHullError struct {
	Point int
	X, Y  float64
}

func (e *InconsistentHullError) Error() string {
	return fmt.Sprintf("inconsistent hull: no visible edge from point %d (%v, %v)", e.Point, e.X, e.Y)
}

// Threading errors through the insertion loop and the flip cascade would
// obscure the algorithm. Instead we panic with a triangulationPanic, and the
// public API recovers it as an error.
type triangulationPanic struct {
	err error
}

func fatal(err error) {
	panic(triangulationPanic{err})
}

// HandleTriangulatePanicRecover converts a recovered triangulation panic back
// into its error. Any other panic value is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(triangulationPanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}
