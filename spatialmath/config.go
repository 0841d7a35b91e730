package spatialmath

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/meshmass/logging"
)

// default values for mass property computations.
const (
	// A mesh is degenerate when the magnitude of its net volume is at most this fraction of the summed
	// magnitudes of its tetrahedra.
	defaultDegenerateVolumeEpsilon = 1e-9

	// Meshes with fewer triangles than this are always folded on the calling goroutine.
	defaultParallelMinTriangles = 4096
)

// MassPropertiesConfig configures a MassPropertiesCalculator.
type MassPropertiesConfig struct {
	DegenerateVolumeEpsilon float64 `json:"degenerate_volume_epsilon"`
	Parallel                bool    `json:"parallel"`
	ParallelMinTriangles    int     `json:"parallel_min_triangles"`
	// LogLevel, when set, gives the calculator its own sublogger at this level.
	LogLevel string `json:"log_level"`
}

// DefaultMassPropertiesConfig returns the configuration used by ComputeMassProperties.
func DefaultMassPropertiesConfig() MassPropertiesConfig {
	return MassPropertiesConfig{
		DegenerateVolumeEpsilon: defaultDegenerateVolumeEpsilon,
		ParallelMinTriangles:    defaultParallelMinTriangles,
	}
}

// NewMassPropertiesConfigFromAttributes decodes an attribute map on top of the default configuration.
// Unknown attributes are an error.
func NewMassPropertiesConfigFromAttributes(attrs map[string]interface{}) (MassPropertiesConfig, error) {
	conf := DefaultMassPropertiesConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", ErrorUnused: true, Result: &conf})
	if err != nil {
		return MassPropertiesConfig{}, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return MassPropertiesConfig{}, errors.Wrap(err, "cannot decode mass properties config")
	}
	return conf, conf.Validate()
}

// Validate ensures all parts of the config are valid.
func (conf *MassPropertiesConfig) Validate() error {
	var errs error
	if conf.DegenerateVolumeEpsilon < 0 || conf.DegenerateVolumeEpsilon >= 1 {
		errs = multierr.Append(errs, errors.Errorf("degenerate_volume_epsilon must be in [0, 1), got %v", conf.DegenerateVolumeEpsilon))
	}
	if conf.ParallelMinTriangles < 1 {
		errs = multierr.Append(errs, errors.Errorf("parallel_min_triangles must be at least 1, got %d", conf.ParallelMinTriangles))
	}
	if conf.LogLevel != "" {
		if _, err := logging.LevelFromString(conf.LogLevel); err != nil {
			errs = multierr.Append(errs, errors.Wrap(err, "log_level"))
		}
	}
	return errs
}
