// Package testutils provides reference implementations used to check mass property computations.
// Nothing here depends on spatialmath, so the functions stay independent of the code they verify.
package testutils

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"
)

// DefaultBruteForceResolution is the number of integration cells along the longest side of a
// tetrahedron's bounding box used when no resolution is given.
const DefaultBruteForceResolution = 200

// Faces of a tetrahedron as triples of point indices. Their winding is not relied on, normals are
// flipped to point away from the centroid.
var tetrahedronFaces = [4][3]int{
	{0, 2, 1},
	{0, 3, 2},
	{0, 1, 3},
	{1, 2, 3},
}

// BoxInertia returns the inertia tensor of a solid box of the given mass about its center, where
// diagonal holds the box's full side lengths:
//
//	                 | y^2 + z^2    0        0     |
//	inertia = M/12 * |     0    z^2 + x^2    0     |
//	                 |     0        0    x^2 + y^2 |
func BoxInertia(mass float64, diagonal r3.Vector) *mat.SymDense {
	mass /= 12
	x := mass * diagonal.X * diagonal.X
	y := mass * diagonal.Y * diagonal.Y
	z := mass * diagonal.Z * diagonal.Z
	return mat.NewSymDense(3, []float64{
		y + z, 0, 0,
		0, z + x, 0,
		0, 0, x + y,
	})
}

// PointInertia returns the inertia tensor about the origin of a point mass located at point.
func PointInertia(point r3.Vector, mass float64) *mat.SymDense {
	var moments [3][3]float64
	addPointInertia(&moments, point, mass)
	return momentsToSymDense(&moments)
}

// addPointInertia adds mass * (|r|^2 E - r(x)r) to the upper triangle of moments.
func addPointInertia(moments *[3][3]float64, point r3.Vector, mass float64) {
	distanceSquared := point.Norm2()
	if distanceSquared == 0 {
		return
	}
	p := [3]float64{point.X, point.Y, point.Z}
	for i := 0; i < 3; i++ {
		moments[i][i] += mass * (distanceSquared - p[i]*p[i])
		for j := i + 1; j < 3; j++ {
			moments[i][j] -= mass * p[i] * p[j]
		}
	}
}

func momentsToSymDense(moments *[3][3]float64) *mat.SymDense {
	inertia := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			inertia.SetSym(i, j, moments[i][j])
		}
	}
	return inertia
}

// BruteForceTetrahedronInertia approximates the inertia tensor about the frame's origin of a solid
// tetrahedron of unit density by summing point masses. The bounding box of the tetrahedron is cut into
// cubic cells, resolution of them along its longest side, and the center of every cell that lies behind
// all four face planes contributes the cell's volume as a point mass. The cost grows with the cube of
// resolution. A non-positive resolution selects DefaultBruteForceResolution.
func BruteForceTetrahedronInertia(points [4]r3.Vector, resolution int) *mat.SymDense {
	if resolution <= 0 {
		resolution = DefaultBruteForceResolution
	}

	// compute outward face normals
	center := points[0].Add(points[1]).Add(points[2]).Add(points[3]).Mul(0.25)
	var normals, pointsOnPlane [4]r3.Vector
	for i, face := range tetrahedronFaces {
		p0, p1, p2 := points[face[0]], points[face[1]], points[face[2]]
		normal := p1.Sub(p0).Cross(p2.Sub(p1)).Normalize()
		if normal.Dot(p0.Sub(center)) < 0 {
			normal = normal.Mul(-1)
		}
		normals[i] = normal
		pointsOnPlane[i] = p0
	}

	// compute bounds of integration
	boxMin, boxMax := points[0], points[0]
	for _, p := range points[1:] {
		boxMin = r3.Vector{X: math.Min(boxMin.X, p.X), Y: math.Min(boxMin.Y, p.Y), Z: math.Min(boxMin.Z, p.Z)}
		boxMax = r3.Vector{X: math.Max(boxMax.X, p.X), Y: math.Max(boxMax.Y, p.Y), Z: math.Max(boxMax.Z, p.Z)}
	}
	diagonal := boxMax.Sub(boxMin)
	maxDimension := math.Max(diagonal.X, math.Max(diagonal.Y, diagonal.Z))

	var moments [3][3]float64
	if maxDimension == 0 {
		return momentsToSymDense(&moments)
	}
	delta := maxDimension / float64(resolution)
	deltaVolume := delta * delta * delta
	steps := [3]int{
		int(math.Ceil(diagonal.X / delta)),
		int(math.Ceil(diagonal.Y / delta)),
		int(math.Ceil(diagonal.Z / delta)),
	}

	// integrate over three dimensions
	for ix := 0; ix < steps[0]; ix++ {
		x := boxMin.X + (float64(ix)+0.5)*delta
		for iy := 0; iy < steps[1]; iy++ {
			y := boxMin.Y + (float64(iy)+0.5)*delta
			for iz := 0; iz < steps[2]; iz++ {
				p := r3.Vector{X: x, Y: y, Z: boxMin.Z + (float64(iz)+0.5)*delta}
				// the point is inside the shape if it is behind all face planes
				inside := true
				for i := range normals {
					if p.Sub(pointsOnPlane[i]).Dot(normals[i]) > 0 {
						inside = false
						break
					}
				}
				if inside {
					addPointInertia(&moments, p, deltaVolume)
				}
			}
		}
	}
	return momentsToSymDense(&moments)
}
