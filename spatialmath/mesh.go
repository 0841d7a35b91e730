package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/meshmass/utils"
)

// Mesh is a closed triangle mesh stored as a vertex buffer and a flat list of vertex indices, three per
// triangle. Triangles are expected to be wound counter-clockwise as seen from outside the solid.
type Mesh struct {
	vertices []r3.Vector
	indices  []uint32
	label    string
}

// NewMesh creates a mesh from a vertex buffer and a triangle index list. The buffers are copied.
// An error is returned if the index list is not made of triples, references missing vertices, or if a
// vertex is not finite. Whether the mesh is closed and consistently wound is not checked.
func NewMesh(vertices []r3.Vector, indices []uint32, label string) (*Mesh, error) {
	if err := validateMeshBuffers(vertices, indices); err != nil {
		return nil, err
	}
	return &Mesh{
		vertices: append([]r3.Vector(nil), vertices...),
		indices:  append([]uint32(nil), indices...),
		label:    label,
	}, nil
}

// NewMeshFromTriangles creates a mesh from a list of triangles. Vertices shared by several triangles
// (exactly equal coordinates) are stored once.
func NewMeshFromTriangles(triangles []*Triangle, label string) (*Mesh, error) {
	vertices := make([]r3.Vector, 0, len(triangles))
	indices := make([]uint32, 0, 3*len(triangles))
	seen := make(map[r3.Vector]uint32, len(triangles))
	for _, tri := range triangles {
		for _, pt := range tri.Points() {
			idx, ok := seen[pt]
			if !ok {
				idx = uint32(len(vertices))
				seen[pt] = idx
				vertices = append(vertices, pt)
			}
			indices = append(indices, idx)
		}
	}
	return NewMesh(vertices, indices, label)
}

// validateMeshBuffers checks the buffer level preconditions of a mesh.
func validateMeshBuffers(vertices []r3.Vector, indices []uint32) error {
	if len(indices)%3 != 0 {
		return errors.Wrapf(ErrIndexCountNotMultipleOfThree, "got %d indices", len(indices))
	}
	for i, v := range vertices {
		if !utils.IsFinite(v.X) || !utils.IsFinite(v.Y) || !utils.IsFinite(v.Z) {
			return errors.Wrapf(ErrNonFiniteVertex, "vertex %d is %v", i, v)
		}
	}
	var errs []error
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			errs = append(errs, &IndexOutOfRangeError{Triangle: i / 3, Index: idx, VertexCount: len(vertices)})
			if len(errs) == maxReportedIndexErrors {
				break
			}
		}
	}
	return multierr.Combine(errs...)
}

// Label returns the label of the mesh.
func (m *Mesh) Label() string {
	return m.label
}

// Vertices returns a copy of the vertex buffer.
func (m *Mesh) Vertices() []r3.Vector {
	return append([]r3.Vector(nil), m.vertices...)
}

// Indices returns a copy of the triangle index list.
func (m *Mesh) Indices() []uint32 {
	return append([]uint32(nil), m.indices...)
}

// Triangles returns the faces of the mesh.
func (m *Mesh) Triangles() []*Triangle {
	triangles := make([]*Triangle, 0, len(m.indices)/3)
	for t := 0; t+2 < len(m.indices); t += 3 {
		triangles = append(triangles, NewTriangle(m.vertices[m.indices[t]], m.vertices[m.indices[t+1]], m.vertices[m.indices[t+2]]))
	}
	return triangles
}

// SurfaceArea returns the summed area of the mesh's triangles.
func (m *Mesh) SurfaceArea() float64 {
	var area float64
	for _, tri := range m.Triangles() {
		area += tri.Area()
	}
	return area
}

// Translate returns a copy of the mesh with every vertex moved by offset.
func (m *Mesh) Translate(offset r3.Vector) *Mesh {
	return m.mapVertices(func(v r3.Vector) r3.Vector { return v.Add(offset) })
}

// Scale returns a copy of the mesh with every vertex scaled about the origin by factor. A negative factor
// mirrors the mesh, which reverses its winding.
func (m *Mesh) Scale(factor float64) *Mesh {
	return m.mapVertices(func(v r3.Vector) r3.Vector { return v.Mul(factor) })
}

func (m *Mesh) mapVertices(f func(r3.Vector) r3.Vector) *Mesh {
	vertices := make([]r3.Vector, len(m.vertices))
	for i, v := range m.vertices {
		vertices[i] = f(v)
	}
	return &Mesh{vertices: vertices, indices: m.indices, label: m.label}
}

// MassProperties computes the volume, center of mass and inertia of the mesh under unit density with
// the default configuration.
func (m *Mesh) MassProperties() (*MassProperties, error) {
	return ComputeMassProperties(m.vertices, m.indices)
}

// String returns a human readable string that represents the mesh.
func (m *Mesh) String() string {
	return fmt.Sprintf("Type: Mesh | Label: %s | Vertices: %d | Triangles: %d", m.label, len(m.vertices), len(m.indices)/3)
}
