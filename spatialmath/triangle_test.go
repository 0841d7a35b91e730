package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestBasicTriangleFunctions(t *testing.T) {
	expectedPts := []r3.Vector{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 0, Y: 3, Z: 0}}
	tri := NewTriangle(expectedPts[0], expectedPts[1], expectedPts[2])

	expectedNormal := r3.Vector{X: 0, Y: 0, Z: 1}
	expectedArea := 4.5

	t.Run("constructor", func(t *testing.T) {
		test.That(t, tri.Points(), test.ShouldResemble, expectedPts)
		test.That(t, tri.Normal(), test.ShouldResemble, expectedNormal)
	})

	t.Run("winding sets normal direction", func(t *testing.T) {
		flipped := NewTriangle(expectedPts[0], expectedPts[2], expectedPts[1])
		test.That(t, flipped.Normal(), test.ShouldResemble, expectedNormal.Mul(-1))
	})

	t.Run("area", func(t *testing.T) {
		test.That(t, tri.Area(), test.ShouldEqual, expectedArea)
	})

	t.Run("degenerate", func(t *testing.T) {
		line := NewTriangle(r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1}, r3.Vector{X: 2, Y: 2, Z: 2})
		test.That(t, line.Normal(), test.ShouldResemble, r3.Vector{})
		test.That(t, line.Area(), test.ShouldEqual, 0.0)
	})
}
