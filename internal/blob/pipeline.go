package blob

import (
	"fmt"

	"github.com/banshee-data/blobfield/internal/monitoring"
)

// Run executes the pipeline once: generate units, build the grid, evaluate
// the Gaussian field and normalize it. Params are validated up front so
// degenerate values fail fast instead of propagating NaNs into the render
// stage.
func Run(p Params) ([]Unit, *Field, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid params: %w", err)
	}

	units := NewGenerator(p).Generate()
	monitoring.Logf("generated %d units in %d clusters", len(units), p.NumClusters)

	grid, err := BuildGrid(units, p.Margin, p.GridRes)
	if err != nil {
		return nil, nil, fmt.Errorf("build grid: %w", err)
	}
	xmin, xmax, ymin, ymax := grid.Bounds()
	monitoring.Logf("grid %dx%d over x=[%.1f,%.1f] y=[%.1f,%.1f]", p.GridRes, p.GridRes, xmin, xmax, ymin, ymax)

	field := EvalField(grid, units, p.Sigma)
	monitoring.Logf("field evaluated, raw max %.4f", field.Max())

	if err := field.Normalize(); err != nil {
		return nil, nil, fmt.Errorf("normalize field: %w", err)
	}

	return units, field, nil
}
