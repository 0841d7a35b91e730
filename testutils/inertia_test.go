package testutils

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/mat"
)

func TestBoxInertia(t *testing.T) {
	inertia := BoxInertia(1, r3.Vector{X: 1, Y: 1, Z: 1})
	test.That(t, mat.EqualApprox(inertia, mat.NewDiagDense(3, []float64{1. / 6, 1. / 6, 1. / 6}), 1e-12), test.ShouldBeTrue)

	inertia = BoxInertia(12, r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, inertia.At(0, 0), test.ShouldAlmostEqual, 13)
	test.That(t, inertia.At(1, 1), test.ShouldAlmostEqual, 10)
	test.That(t, inertia.At(2, 2), test.ShouldAlmostEqual, 5)
	test.That(t, inertia.At(0, 1), test.ShouldEqual, 0.0)
}

func TestPointInertia(t *testing.T) {
	inertia := PointInertia(r3.Vector{X: 1, Y: 2, Z: 3}, 2)
	expected := mat.NewSymDense(3, []float64{
		26, -4, -6,
		-4, 20, -12,
		-6, -12, 10,
	})
	test.That(t, mat.EqualApprox(inertia, expected, 1e-12), test.ShouldBeTrue)

	test.That(t, mat.Equal(PointInertia(r3.Vector{}, 5), mat.NewSymDense(3, nil)), test.ShouldBeTrue)
}

// exactTetrahedronInertia integrates the second moments of a tetrahedron analytically:
// integral of x_a*x_b over the solid is V/20 * (sum_n x_na*x_nb + (sum_n x_na)*(sum_n x_nb)).
func exactTetrahedronInertia(points [4]r3.Vector) *mat.SymDense {
	volume := math.Abs(points[1].Sub(points[0]).Cross(points[2].Sub(points[0])).Dot(points[3].Sub(points[0]))) / 6
	var coords [4][3]float64
	for n, p := range points {
		coords[n] = [3]float64{p.X, p.Y, p.Z}
	}
	var second [3][3]float64
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			var products, sumA, sumB float64
			for n := range coords {
				products += coords[n][a] * coords[n][b]
				sumA += coords[n][a]
				sumB += coords[n][b]
			}
			second[a][b] = volume / 20 * (products + sumA*sumB)
		}
	}
	trace := second[0][0] + second[1][1] + second[2][2]
	inertia := mat.NewSymDense(3, nil)
	for a := 0; a < 3; a++ {
		inertia.SetSym(a, a, trace-second[a][a])
		for b := a + 1; b < 3; b++ {
			inertia.SetSym(a, b, -second[a][b])
		}
	}
	return inertia
}

func TestBruteForceTetrahedronInertia(t *testing.T) {
	points := [4]r3.Vector{
		{X: 0, Y: 0, Z: 0},
		{X: 2, Y: 0.5, Z: 0},
		{X: 0.3, Y: 1.5, Z: 0.2},
		{X: 0.4, Y: 0.6, Z: 1.8},
	}
	expected := exactTetrahedronInertia(points)
	actual := BruteForceTetrahedronInertia(points, 100)

	scale := math.Max(expected.At(0, 0), math.Max(expected.At(1, 1), expected.At(2, 2)))
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			test.That(t, actual.At(i, j), test.ShouldAlmostEqual, expected.At(i, j), 1e-2*scale)
		}
	}

	t.Run("flat tetrahedron", func(t *testing.T) {
		flat := [4]r3.Vector{{}, {}, {}, {}}
		test.That(t, mat.Equal(BruteForceTetrahedronInertia(flat, 0), mat.NewSymDense(3, nil)), test.ShouldBeTrue)
	})
}
