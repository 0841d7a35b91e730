// Package spatialmath computes volume, center of mass, and inertia tensors of closed triangle meshes.
package spatialmath

import (
	"context"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/meshmass/logging"
	"go.viam.com/meshmass/utils"
)

// MassProperties are the volume, center of mass and inertia of a solid. Inertia is expressed about
// CenterOfMass, in the axes of the mesh it was computed from.
type MassProperties struct {
	Volume       float64
	Density      float64
	CenterOfMass r3.Vector
	Inertia      *Inertia
}

// Mass returns the mass of the solid, its volume times its density. A zero Density is read as unit
// density.
func (mp *MassProperties) Mass() float64 {
	return mp.Volume * mp.density()
}

func (mp *MassProperties) density() float64 {
	if mp.Density == 0 {
		return 1
	}
	return mp.Density
}

// WithDensity returns a copy of the mass properties for a solid of the given uniform density. Mass and
// inertia scale linearly with density, volume and center of mass are unchanged. A zero Density on the
// receiver is read as unit density.
func (mp *MassProperties) WithDensity(density float64) (*MassProperties, error) {
	if density <= 0 {
		return nil, errors.Wrapf(ErrNonPositiveDensity, "got %v", density)
	}
	inertia := mp.Inertia.Clone()
	inertia.Scale(density / mp.density())
	return &MassProperties{
		Volume:       mp.Volume,
		Density:      density,
		CenterOfMass: mp.CenterOfMass,
		Inertia:      inertia,
	}, nil
}

func (mp *MassProperties) String() string {
	return fmt.Sprintf("Volume: %g | Density: %g | Center of mass: X:%g, Y:%g, Z:%g | Inertia: %v",
		mp.Volume, mp.Density, mp.CenterOfMass.X, mp.CenterOfMass.Y, mp.CenterOfMass.Z, mp.Inertia)
}

// meshAccumulator sums the contributions of the tetrahedra formed by the local origin and each mesh
// triangle. All totals are about the origin until result is called.
type meshAccumulator struct {
	volume         float64
	grossVolume    float64
	weightedCenter r3.Vector
	inertia        *Inertia
}

func newMeshAccumulator() *meshAccumulator {
	return &meshAccumulator{inertia: NewInertia()}
}

// addIndexedTriangle adds triangle number t of an index list.
func (acc *meshAccumulator) addIndexedTriangle(vertices []r3.Vector, indices []uint32, t int) {
	i := 3 * t
	acc.addTriangle(vertices[indices[i]], vertices[indices[i+1]], vertices[indices[i+2]])
}

// addTriangle adds the tetrahedron with its apex at the origin and the triangle {p1, p2, p3} as its base.
// The centroid below is the average of all four points with the zero apex dropped from the sum, which is
// only valid while the apex is the origin.
func (acc *meshAccumulator) addTriangle(p1, p2, p3 r3.Vector) {
	points := [4]r3.Vector{{}, p1, p2, p3}
	volume := TetrahedronVolume(points)
	center := TetrahedronCentroid(points)

	// shift vertices so that the tetrahedron's center of mass is at the origin
	for i := range points {
		points[i] = points[i].Sub(center)
	}

	// compute inertia tensor then shift it to the origin frame
	inertia := TetrahedronInertia(volume, points)
	inertia.ParallelAxisShift(center, volume)

	acc.weightedCenter = acc.weightedCenter.Add(center.Mul(volume))
	acc.volume += volume
	acc.grossVolume += math.Abs(volume)
	acc.inertia.Add(inertia)
}

func (acc *meshAccumulator) merge(other *meshAccumulator) {
	acc.weightedCenter = acc.weightedCenter.Add(other.weightedCenter)
	acc.volume += other.volume
	acc.grossVolume += other.grossVolume
	acc.inertia.Add(other.inertia)
}

// result converts the totals to mass properties about the center of mass. The shift away from the origin
// happens once, here: each tetrahedron has its own centroid so no earlier point would be correct.
func (acc *meshAccumulator) result(degenerateEpsilon float64) (*MassProperties, error) {
	if acc.grossVolume == 0 || math.Abs(acc.volume) <= degenerateEpsilon*acc.grossVolume {
		return nil, errors.Wrapf(ErrDegenerateVolume, "net volume %g from tetrahedra totaling %g", acc.volume, acc.grossVolume)
	}
	centerOfMass := acc.weightedCenter.Mul(1 / acc.volume)
	inertia := acc.inertia.Clone()
	inertia.InverseParallelAxisShift(centerOfMass, acc.volume)
	return &MassProperties{
		Volume:       acc.volume,
		Density:      1,
		CenterOfMass: centerOfMass,
		Inertia:      inertia,
	}, nil
}

// MassPropertiesCalculator computes mass properties of triangle meshes under unit density.
type MassPropertiesCalculator struct {
	conf   MassPropertiesConfig
	logger logging.Logger
}

// NewMassPropertiesCalculator returns a calculator for the given configuration. A nil logger falls back
// to the global logger. A configured log level is applied to a sublogger, leaving logger untouched.
func NewMassPropertiesCalculator(conf MassPropertiesConfig, logger logging.Logger) (*MassPropertiesCalculator, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Global()
	}
	if conf.LogLevel != "" {
		level, err := logging.LevelFromString(conf.LogLevel)
		if err != nil {
			return nil, err
		}
		logger = logger.Sublogger("mass_properties")
		logger.SetLevel(level)
	}
	return &MassPropertiesCalculator{conf: conf, logger: logger}, nil
}

// ComputeMassProperties computes the volume, center of mass and inertia of a closed mesh under unit
// density with the default configuration. See MassPropertiesCalculator.Compute.
func ComputeMassProperties(vertices []r3.Vector, indices []uint32) (*MassProperties, error) {
	calc := &MassPropertiesCalculator{conf: DefaultMassPropertiesConfig(), logger: logging.Global()}
	return calc.Compute(context.Background(), vertices, indices)
}

// Compute decomposes the mesh into one tetrahedron per triangle, each with its apex at the local origin,
// and sums their signed volumes, volume weighted centroids and inertia tensors. The triangles must be
// wound counter-clockwise as seen from outside the mesh and the mesh must be closed; neither is checked.
// Malformed index lists, non-finite vertices and meshes that enclose no volume are errors.
func (c *MassPropertiesCalculator) Compute(ctx context.Context, vertices []r3.Vector, indices []uint32) (*MassProperties, error) {
	if err := validateMeshBuffers(vertices, indices); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	numTriangles := len(indices) / 3
	parallel := c.conf.Parallel && numTriangles >= c.conf.ParallelMinTriangles
	var acc *meshAccumulator
	if parallel {
		var err error
		acc, err = accumulateParallel(ctx, vertices, indices)
		if err != nil {
			return nil, err
		}
	} else {
		acc = newMeshAccumulator()
		for t := 0; t < numTriangles; t++ {
			acc.addIndexedTriangle(vertices, indices, t)
		}
	}

	props, err := acc.result(c.conf.DegenerateVolumeEpsilon)
	if err != nil {
		return nil, err
	}
	if props.Volume < 0 {
		c.logger.Warnw("mesh has negative volume, its triangles may be wound clockwise", "volume", props.Volume)
	}
	c.logger.Debugw("computed mass properties", "triangles", numTriangles, "parallel", parallel, "volume", props.Volume)
	return props, nil
}

// accumulateParallel folds contiguous ranges of triangles on separate goroutines and merges the partial
// totals in range order.
func accumulateParallel(ctx context.Context, vertices []r3.Vector, indices []uint32) (*meshAccumulator, error) {
	var partials []*meshAccumulator
	err := utils.GroupWorkParallel(
		ctx,
		len(indices)/3,
		func(numGroups int) {
			partials = make([]*meshAccumulator, numGroups)
		},
		func(groupNum, groupSize, from, to int) (utils.MemberWorkFunc, utils.GroupWorkDoneFunc) {
			acc := newMeshAccumulator()
			partials[groupNum] = acc
			return func(memberNum, workNum int) {
				acc.addIndexedTriangle(vertices, indices, workNum)
			}, nil
		},
	)
	if err != nil {
		return nil, err
	}

	total := newMeshAccumulator()
	for _, partial := range partials {
		total.merge(partial)
	}
	return total, nil
}
