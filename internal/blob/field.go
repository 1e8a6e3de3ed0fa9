package blob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Field is the scalar metaball field sampled on a grid: one non-negative
// value per grid cell, indexed (row, col) = (y sample, x sample) to match
// Grid.At.
type Field struct {
	Grid *Grid
	Data *mat.Dense
}

// EvalField accumulates an isotropic Gaussian kernel of width sigma centered
// at every unit, evaluated at every grid point. Runtime is
// O(res^2 * len(units)).
func EvalField(g *Grid, units []Unit, sigma float64) *Field {
	res := g.Res()
	data := mat.NewDense(res, res, nil)
	inv := 1.0 / (2.0 * sigma * sigma)

	for _, u := range units {
		for i := 0; i < res; i++ {
			dy := g.YS[i] - u.Y
			dy2 := dy * dy
			for j := 0; j < res; j++ {
				dx := g.XS[j] - u.X
				data.Set(i, j, data.At(i, j)+math.Exp(-(dx*dx+dy2)*inv))
			}
		}
	}

	return &Field{Grid: g, Data: data}
}

// Normalize scales the field by its global maximum so the peak is exactly
// 1.0 and every value lies in [0, 1]. A field with no positive maximum
// (no units, or a sigma extreme enough that every kernel underflows to
// zero) cannot be normalized and is reported rather than divided by zero.
func (f *Field) Normalize() error {
	max := mat.Max(f.Data)
	if max <= 0 || math.IsNaN(max) || math.IsInf(max, 0) {
		return fmt.Errorf("cannot normalize field: maximum %v is not positive and finite", max)
	}
	// Divide rather than scale by the reciprocal so the peak lands on
	// exactly 1.0.
	f.Data.Apply(func(_, _ int, v float64) float64 { return v / max }, f.Data)
	return nil
}

// Max returns the current global maximum of the field.
func (f *Field) Max() float64 { return mat.Max(f.Data) }

// At returns the field value at cell (i, j).
func (f *Field) At(i, j int) float64 { return f.Data.At(i, j) }
