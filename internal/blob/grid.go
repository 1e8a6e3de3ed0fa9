package blob

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Grid is a uniform rectangular sampling grid over the unit bounding box
// expanded by a margin. Axis samples are inclusive of both bounds. Cell
// (i, j) follows the row-major meshgrid convention: row index i walks the
// y axis, column index j walks the x axis.
type Grid struct {
	XS []float64 // x-axis samples, length Res
	YS []float64 // y-axis samples, length Res
}

// BuildGrid computes the per-axis min and max over all units, expands by
// margin, and samples res evenly spaced coordinates per axis. An empty unit
// set has no bounding box and is rejected.
func BuildGrid(units []Unit, margin float64, res int) (*Grid, error) {
	if len(units) == 0 {
		return nil, fmt.Errorf("cannot build grid: no units")
	}
	if res < 2 {
		return nil, fmt.Errorf("cannot build grid: resolution %d too small", res)
	}

	xmin, xmax := units[0].X, units[0].X
	ymin, ymax := units[0].Y, units[0].Y
	for _, u := range units[1:] {
		if u.X < xmin {
			xmin = u.X
		}
		if u.X > xmax {
			xmax = u.X
		}
		if u.Y < ymin {
			ymin = u.Y
		}
		if u.Y > ymax {
			ymax = u.Y
		}
	}

	g := &Grid{
		XS: make([]float64, res),
		YS: make([]float64, res),
	}
	floats.Span(g.XS, xmin-margin, xmax+margin)
	floats.Span(g.YS, ymin-margin, ymax+margin)
	return g, nil
}

// Res returns the per-axis sample count.
func (g *Grid) Res() int { return len(g.XS) }

// At returns the coordinates of cell (i, j).
func (g *Grid) At(i, j int) (x, y float64) {
	return g.XS[j], g.YS[i]
}

// Bounds returns the grid extent per axis.
func (g *Grid) Bounds() (xmin, xmax, ymin, ymax float64) {
	return g.XS[0], g.XS[len(g.XS)-1], g.YS[0], g.YS[len(g.YS)-1]
}
