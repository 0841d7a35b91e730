package spatialmath

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrIndexCountNotMultipleOfThree is returned when a triangle index list cannot be split into triples.
	ErrIndexCountNotMultipleOfThree = errors.New("triangle index count is not a multiple of 3")

	// ErrNonFiniteVertex is returned when a vertex has a NaN or infinite coordinate.
	ErrNonFiniteVertex = errors.New("vertex coordinate is not finite")

	// ErrDegenerateVolume is returned when a mesh encloses (almost) no volume, so that its center of mass
	// is undefined. Open meshes and meshes whose triangles cancel each other out end up here.
	ErrDegenerateVolume = errors.New("mesh encloses no volume")

	// ErrNonPositiveDensity is returned when scaling mass properties by a density that is not positive.
	ErrNonPositiveDensity = errors.New("density must be positive")
)

// maxReportedIndexErrors caps how many out of range indices are reported by a single validation.
const maxReportedIndexErrors = 8

// IndexOutOfRangeError is returned when a triangle references a vertex that does not exist.
type IndexOutOfRangeError struct {
	Triangle    int
	Index       uint32
	VertexCount int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("triangle %d references vertex %d but the mesh only has %d vertices", e.Triangle, e.Index, e.VertexCount)
}

func newBadGeometryDimensionsError(kind string) error {
	return errors.Errorf("invalid dimension(s) for %s", kind)
}
