package spatialmath

import (
	"github.com/golang/geo/r3"
)

// Box vertex signs, indexed such that bit 0 selects +X, bit 1 +Y and bit 2 +Z.
var boxVertices = [8]r3.Vector{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}

// The sets of indices of the box vertices that tile the box exterior, wound counter-clockwise as seen
// from outside the box. Two triangles per face, in -Z, +Z, -Y, +Y, -X, +X order.
var boxTriangles = [12][3]uint32{
	{0, 2, 1},
	{1, 2, 3},
	{4, 5, 6},
	{5, 7, 6},
	{0, 1, 5},
	{0, 5, 4},
	{2, 6, 7},
	{2, 7, 3},
	{0, 4, 6},
	{0, 6, 2},
	{1, 3, 7},
	{1, 7, 5},
}

// NewBoxMesh creates a closed 12 triangle mesh of an axis aligned box centered at center with full side
// lengths dims. Zero dimensions are allowed (the mesh then encloses no volume), negative ones are not.
func NewBoxMesh(center, dims r3.Vector, label string) (*Mesh, error) {
	if dims.X < 0 || dims.Y < 0 || dims.Z < 0 {
		return nil, newBadGeometryDimensionsError("box")
	}
	halfSize := dims.Mul(0.5)
	vertices := make([]r3.Vector, 0, len(boxVertices))
	for _, v := range boxVertices {
		vertices = append(vertices, center.Add(r3.Vector{X: v.X * halfSize.X, Y: v.Y * halfSize.Y, Z: v.Z * halfSize.Z}))
	}
	indices := make([]uint32, 0, 3*len(boxTriangles))
	for _, tri := range boxTriangles {
		indices = append(indices, tri[:]...)
	}
	return NewMesh(vertices, indices, label)
}
