// Package blob implements the metaball pipeline: clustered unit generation,
// grid construction and Gaussian field evaluation.
package blob

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Extent of the square in which cluster centers are drawn, and the standard
// deviation of the per-axis Gaussian perturbation applied to each unit.
const (
	CenterExtent = 50.0
	UnitSpread   = 5.0
)

// Unit is one generated 2D point contributing to the field. Units are
// immutable once created; cluster membership is not retained.
type Unit struct {
	X float64
	Y float64
}

// Generator produces clustered units from an explicit random source so runs
// can be made deterministic and the source never has to be process-global.
type Generator struct {
	params Params

	centerDist distuv.Uniform
	noiseDist  distuv.Normal
}

// NewGenerator creates a generator for the given params. A zero seed selects
// a time-based one.
func NewGenerator(p Params) *Generator {
	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	src := rand.NewPCG(seed, seed)

	return &Generator{
		params: p,
		centerDist: distuv.Uniform{
			Min: -CenterExtent,
			Max: CenterExtent,
			Src: src,
		},
		noiseDist: distuv.Normal{
			Mu:    0,
			Sigma: UnitSpread,
			Src:   src,
		},
	}
}

// Generate draws NumClusters cluster centers uniformly from the center
// square, then UnitsPerCluster points around each center with isotropic
// Gaussian noise. The result is cluster-major: all of one cluster's units
// are contiguous, clusters in generation order.
func (g *Generator) Generate() []Unit {
	units := make([]Unit, 0, g.params.NumClusters*g.params.UnitsPerCluster)

	for c := 0; c < g.params.NumClusters; c++ {
		cx := g.centerDist.Rand()
		cy := g.centerDist.Rand()

		for u := 0; u < g.params.UnitsPerCluster; u++ {
			units = append(units, Unit{
				X: cx + g.noiseDist.Rand(),
				Y: cy + g.noiseDist.Rand(),
			})
		}
	}

	return units
}
