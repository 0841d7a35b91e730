package spatialmath

import (
	"github.com/golang/geo/r3"

	"go.viam.com/meshmass/utils"
)

// TetrahedronVolume returns the signed volume of the tetrahedron with apex points[0] over the face
// {points[1], points[2], points[3]}. The face is assumed to be wound according to the right hand rule
// as seen from outside the solid it bounds.
//
// The volume is negative when the apex lies on the outer side of the face. Summing these signed volumes
// over every face of a closed mesh cancels the space outside the mesh, which is what lets a single
// shared apex decompose non-convex meshes.
func TetrahedronVolume(points [4]r3.Vector) float64 {
	// volume = (face_area * face_normal).dot(face_to_far_point) / 3.0
	// (face_area * face_normal) = side0.cross(side1) / 2.0
	side0 := points[2].Sub(points[1])
	side1 := points[3].Sub(points[2])
	return side0.Cross(side1).Dot(points[3].Sub(points[0])) / 6
}

// TetrahedronCentroid returns the center of mass of a tetrahedron.
func TetrahedronCentroid(points [4]r3.Vector) r3.Vector {
	return points[0].Add(points[1]).Add(points[2]).Add(points[3]).Mul(0.25)
}

// TetrahedronInertia returns the inertia tensor of a solid tetrahedron of the given mass about its own
// center of mass. The points must already be expressed relative to that center of mass, i.e. they must
// sum to (approximately) zero; other points silently produce a wrong tensor.
//
// The formulas come from Tonon, "Explicit Exact Formulas for the 3-D Tetrahedron Inertia Tensor in
// Terms of its Vertex Coordinates" (2005). The published formulas contain a typo, the coefficients
// below are the ones checked against numerical integration. The tensor has the form
//
//	          | a   f   e |
//	inertia = | f   b   d |
//	          | e   d   c |
//
// and each pass of the loop below computes one diagonal term and the off-diagonal term of the two
// remaining axes.
func TetrahedronInertia(mass float64, points [4]r3.Vector) *Inertia {
	var p [4][3]float64
	for n, pt := range points {
		p[n] = vecToArray(pt)
	}

	inertia := NewInertia()
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (j + 1) % 3

		inertia.mat.SetSym(i, i, mass*0.1*(secondMomentSum(&p, j)+secondMomentSum(&p, k)))
		inertia.mat.SetSym(j, k, -mass*0.05*productMomentSum(&p, j, k))
	}
	return inertia
}

// secondMomentSum is the sum of all squares and pairwise products of the vertices' a coordinates.
func secondMomentSum(p *[4][3]float64, a int) float64 {
	return p[0][a]*(p[0][a]+p[1][a]+p[2][a]+p[3][a]) +
		p[1][a]*(p[1][a]+p[2][a]+p[3][a]) +
		p[2][a]*(p[2][a]+p[3][a]) +
		utils.Square(p[3][a])
}

func productMomentSum(p *[4][3]float64, j, k int) float64 {
	return 2*(p[0][j]*p[0][k]+p[1][j]*p[1][k]+p[2][j]*p[2][k]+p[3][j]*p[3][k]) +
		p[0][j]*(p[1][k]+p[2][k]+p[3][k]) +
		p[1][j]*(p[0][k]+p[2][k]+p[3][k]) +
		p[2][j]*(p[0][k]+p[1][k]+p[3][k]) +
		p[3][j]*(p[0][k]+p[1][k]+p[2][k])
}
