package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"randviz/pkg/config"
)

// ErrInvalidConfig indicates generation parameters that cannot produce data
var ErrInvalidConfig = errors.New("invalid generation config")

// Noise produces one random offset per call
type Noise interface {
	Sample() float64
}

// GaussianNoise draws offsets from a normal distribution with mean 0.
// Each instance carries its own locally scoped RNG so that seeding never
// touches process-wide state.
type GaussianNoise struct {
	rng    *rand.Rand
	stdDev float64
}

// NewGaussianNoise creates a new gaussian noise source
func NewGaussianNoise(seed int64, stdDev float64) *GaussianNoise {
	return &GaussianNoise{
		rng:    rand.New(rand.NewSource(seed)),
		stdDev: stdDev,
	}
}

// Sample returns the next gaussian offset
func (g *GaussianNoise) Sample() float64 {
	return g.rng.NormFloat64() * g.stdDev
}

// Dataset pairs an index sequence with an equal-length value sequence
type Dataset struct {
	Indices []int
	Values  []float64
}

// Len returns the number of points in the dataset
func (d *Dataset) Len() int {
	return len(d.Values)
}

// Generator produces datasets from a configuration
type Generator struct {
	cfg config.Config
}

// NewGenerator creates a new dataset generator
func NewGenerator(cfg config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces a fresh dataset: indices 0..n-1 and values drawn as
// BaseValue + NoiseStd*Z. The noise source is seeded per call, so repeated
// calls with the same fixed seed yield identical value sequences.
func (g *Generator) Generate() (*Dataset, error) {
	if g.cfg.NPoints <= 0 {
		return nil, fmt.Errorf("%w: n_points must be positive (got %d)", ErrInvalidConfig, g.cfg.NPoints)
	}
	if g.cfg.NoiseStd <= 0 {
		return nil, fmt.Errorf("%w: noise_std must be positive (got %g)", ErrInvalidConfig, g.cfg.NoiseStd)
	}

	seed := time.Now().UnixNano()
	if g.cfg.RandomSeed != nil {
		seed = *g.cfg.RandomSeed
	}
	noise := NewGaussianNoise(seed, g.cfg.NoiseStd)

	ds := &Dataset{
		Indices: make([]int, g.cfg.NPoints),
		Values:  make([]float64, g.cfg.NPoints),
	}
	for i := 0; i < g.cfg.NPoints; i++ {
		ds.Indices[i] = i
		ds.Values[i] = g.cfg.BaseValue + noise.Sample()
	}

	return ds, nil
}
