package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Inertia is a 3x3 inertia tensor. It is stored as a symmetric matrix, so every write to an
// off-diagonal entry updates its mirror as well.
type Inertia struct {
	mat *mat.SymDense
}

// NewInertia returns a zero inertia tensor.
func NewInertia() *Inertia {
	return &Inertia{mat: mat.NewSymDense(3, nil)}
}

// NewDiagonalInertia returns an inertia tensor with the given moments on its diagonal and no products of inertia.
func NewDiagonalInertia(moments r3.Vector) *Inertia {
	in := NewInertia()
	for i, m := range vecToArray(moments) {
		in.mat.SetSym(i, i, m)
	}
	return in
}

// NewInertiaFromSymmetric copies a 3x3 symmetric matrix into a new inertia tensor.
func NewInertiaFromSymmetric(s mat.Symmetric) (*Inertia, error) {
	if n := s.SymmetricDim(); n != 3 {
		return nil, errors.Errorf("inertia tensor must be 3x3, got %dx%d", n, n)
	}
	in := NewInertia()
	in.mat.CopySym(s)
	return in, nil
}

// PointMassInertia returns the inertia about the origin of a point mass located at point.
func PointMassInertia(point r3.Vector, mass float64) *Inertia {
	in := NewInertia()
	in.ParallelAxisShift(point, mass)
	return in
}

// At returns the entry at row i, column j.
func (in *Inertia) At(i, j int) float64 {
	return in.mat.At(i, j)
}

// Diagonal returns the moments of inertia about the x, y and z axes.
func (in *Inertia) Diagonal() r3.Vector {
	return r3.Vector{X: in.mat.At(0, 0), Y: in.mat.At(1, 1), Z: in.mat.At(2, 2)}
}

// Symmetric returns a copy of the tensor as a gonum symmetric matrix.
func (in *Inertia) Symmetric() *mat.SymDense {
	s := mat.NewSymDense(3, nil)
	s.CopySym(in.mat)
	return s
}

// Clone returns a deep copy of the tensor.
func (in *Inertia) Clone() *Inertia {
	return &Inertia{mat: in.Symmetric()}
}

// Add accumulates other into the tensor.
func (in *Inertia) Add(other *Inertia) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			in.mat.SetSym(i, j, in.mat.At(i, j)+other.mat.At(i, j))
		}
	}
}

// Scale multiplies every entry of the tensor by f.
func (in *Inertia) Scale(f float64) {
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			in.mat.SetSym(i, j, f*in.mat.At(i, j))
		}
	}
}

// ParallelAxisShift re-expresses an inertia tensor about a body's center of mass as the tensor about
// a point displaced from the center of mass by -offset. Equivalently, it moves the body by offset
// and returns its inertia about the original frame:
//
//	Ishifted = Icm + M * [ (R*R)E - R(x)R ]
//
// where R*R is the inner product, R(x)R the outer product and E the identity matrix.
func (in *Inertia) ParallelAxisShift(offset r3.Vector, mass float64) {
	in.shift(offset, mass)
}

// InverseParallelAxisShift undoes ParallelAxisShift, recovering the tensor about the center of mass
// from a tensor computed about a frame the center of mass is offset from:
//
//	Icm = Ishifted - M * [ (R*R)E - R(x)R ]
func (in *Inertia) InverseParallelAxisShift(offset r3.Vector, mass float64) {
	in.shift(offset, -mass)
}

func (in *Inertia) shift(offset r3.Vector, mass float64) {
	distanceSquared := offset.Norm2()
	if distanceSquared == 0 {
		return
	}
	d := vecToArray(offset)
	for i := 0; i < 3; i++ {
		in.mat.SetSym(i, i, in.mat.At(i, i)+mass*(distanceSquared-d[i]*d[i]))
		for j := i + 1; j < 3; j++ {
			in.mat.SetSym(i, j, in.mat.At(i, j)-mass*d[i]*d[j])
		}
	}
}

// AlmostEqual compares two tensors entry by entry, using epsilon as an absolute tolerance for small
// entries and a relative tolerance for large ones.
func (in *Inertia) AlmostEqual(other *Inertia, epsilon float64) bool {
	return mat.EqualApprox(in.mat, other.mat, epsilon)
}

// PrincipalMoments diagonalizes the tensor. It returns the principal moments in ascending order and
// a rotation matrix whose columns are the matching principal axes.
func (in *Inertia) PrincipalMoments() (r3.Vector, *mat.Dense, error) {
	var eig mat.EigenSym
	if ok := eig.Factorize(in.mat, true); !ok {
		return r3.Vector{}, nil, errors.New("could not diagonalize inertia tensor")
	}
	values := eig.Values(nil)
	var axes mat.Dense
	eig.VectorsTo(&axes)
	return r3.Vector{X: values[0], Y: values[1], Z: values[2]}, &axes, nil
}

func (in *Inertia) String() string {
	return fmt.Sprintf("%v", mat.Formatted(in.mat, mat.Squeeze()))
}

func vecToArray(v r3.Vector) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
