package spatialmath

import (
	"context"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"go.viam.com/meshmass/logging"
)

func TestMassPropertiesConfig(t *testing.T) {
	conf := DefaultMassPropertiesConfig()
	test.That(t, conf.Validate(), test.ShouldBeNil)
	test.That(t, conf.Parallel, test.ShouldBeFalse)

	t.Run("attributes", func(t *testing.T) {
		conf, err := NewMassPropertiesConfigFromAttributes(map[string]interface{}{
			"parallel":               true,
			"parallel_min_triangles": 128.0,
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, conf.Parallel, test.ShouldBeTrue)
		test.That(t, conf.ParallelMinTriangles, test.ShouldEqual, 128)
		test.That(t, conf.DegenerateVolumeEpsilon, test.ShouldEqual, defaultDegenerateVolumeEpsilon)
	})

	t.Run("unknown attribute", func(t *testing.T) {
		_, err := NewMassPropertiesConfigFromAttributes(map[string]interface{}{"density": 2})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "density")
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := NewMassPropertiesConfigFromAttributes(map[string]interface{}{
			"degenerate_volume_epsilon": -1,
			"parallel_min_triangles":    0,
		})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "degenerate_volume_epsilon")
		test.That(t, err.Error(), test.ShouldContainSubstring, "parallel_min_triangles")

		_, err = NewMassPropertiesCalculator(MassPropertiesConfig{DegenerateVolumeEpsilon: 1}, logging.NewTestLogger(t))
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("log level", func(t *testing.T) {
		conf, err := NewMassPropertiesConfigFromAttributes(map[string]interface{}{"log_level": "warn"})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, conf.LogLevel, test.ShouldEqual, "warn")

		_, err = NewMassPropertiesConfigFromAttributes(map[string]interface{}{"log_level": "loud"})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, err.Error(), test.ShouldContainSubstring, "log_level")

		cube := makeBoxMesh(t, r3.Vector{}, r3.Vector{X: 1, Y: 1, Z: 1})
		logger, logs := logging.NewObservedTestLogger(t)

		quiet, err := NewMassPropertiesCalculator(conf, logger)
		test.That(t, err, test.ShouldBeNil)
		_, err = quiet.Compute(context.Background(), cube.Vertices(), cube.Indices())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, logs.Len(), test.ShouldEqual, 0)
		test.That(t, logger.GetLevel(), test.ShouldEqual, logging.DEBUG)

		conf.LogLevel = "debug"
		verbose, err := NewMassPropertiesCalculator(conf, logger)
		test.That(t, err, test.ShouldBeNil)
		_, err = verbose.Compute(context.Background(), cube.Vertices(), cube.Indices())
		test.That(t, err, test.ShouldBeNil)
		test.That(t, logs.Len(), test.ShouldEqual, 1)
		test.That(t, logs.All()[0].LoggerName, test.ShouldEqual, "mass_properties")
	})

	t.Run("nil logger", func(t *testing.T) {
		calc, err := NewMassPropertiesCalculator(DefaultMassPropertiesConfig(), nil)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, calc.logger, test.ShouldEqual, logging.Global())
	})
}
