package utils

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestRelAlmostEqual(t *testing.T) {
	test.That(t, Float64RelAlmostEqual(1e6, 1e6+1, 0, 1e-5), test.ShouldBeTrue)
	test.That(t, Float64RelAlmostEqual(1e-12, 0, 1e-9, 0), test.ShouldBeTrue)
	test.That(t, Float64RelAlmostEqual(1, 1.1, 1e-9, 1e-3), test.ShouldBeFalse)
	test.That(t, Float64RelAlmostEqual(-2, 2, 1e-9, 1e-3), test.ShouldBeFalse)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(-3), test.ShouldEqual, 9.0)
	test.That(t, Square(0.5), test.ShouldEqual, 0.25)
}

func TestIsFinite(t *testing.T) {
	test.That(t, IsFinite(1.5), test.ShouldBeTrue)
	test.That(t, IsFinite(math.NaN()), test.ShouldBeFalse)
	test.That(t, IsFinite(math.Inf(-1)), test.ShouldBeFalse)
}
