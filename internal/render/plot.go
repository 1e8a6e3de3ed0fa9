// Package render draws the blob: a single isocontour of the normalized
// field with the generating units scattered on top. Output is either a
// static image via gonum/plot or an interactive HTML chart via go-echarts.
package render

import (
	"fmt"
	"image/color"

	"github.com/banshee-data/blobfield/internal/blob"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotTitle is the title used on every rendered figure.
const PlotTitle = "Single Smooth Blob (Gaussian Field + Isocontour)"

// fieldGrid adapts a blob.Field to the plotter's grid interface. The field
// is row-major in y, so the plotter's column index maps to our column and
// its row index to our row.
type fieldGrid struct {
	f *blob.Field
}

func (g fieldGrid) Dims() (c, r int)   { res := g.f.Grid.Res(); return res, res }
func (g fieldGrid) Z(c, r int) float64 { return g.f.At(r, c) }
func (g fieldGrid) X(c int) float64    { return g.f.Grid.XS[c] }
func (g fieldGrid) Y(r int) float64    { return g.f.Grid.YS[r] }

// singlePalette satisfies palette.Palette with one color; the contour
// plotter wants a palette even for a single level.
type singlePalette struct {
	c color.Color
}

func (p singlePalette) Colors() []color.Color { return []color.Color{p.c} }

var _ palette.Palette = singlePalette{}

// SavePlot renders the isocontour at the given threshold plus a scatter
// marker per unit and writes the figure to path. The output format follows
// the file extension (.png, .svg, .pdf). The canvas is square and both axis
// ranges are padded to the same span so x and y units are visually uniform.
func SavePlot(f *blob.Field, units []blob.Unit, threshold float64, path string) error {
	p := plot.New()
	p.Title.Text = PlotTitle
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"

	contourColor := color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	c := plotter.NewContour(fieldGrid{f: f}, []float64{threshold}, singlePalette{c: contourColor})
	c.LineStyles = []draw.LineStyle{{Color: contourColor, Width: vg.Points(1.5)}}
	p.Add(c)

	xys := make(plotter.XYs, len(units))
	for i, u := range units {
		xys[i] = plotter.XY{X: u.X, Y: u.Y}
	}
	s, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("build scatter: %w", err)
	}
	s.GlyphStyle.Color = color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff}
	s.GlyphStyle.Radius = vg.Points(2)
	s.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(s)

	// Equal aspect: pad both axes to the larger span around their
	// centers, then draw on a square canvas.
	xmin, xmax, ymin, ymax := f.Grid.Bounds()
	span := xmax - xmin
	if ys := ymax - ymin; ys > span {
		span = ys
	}
	xc := (xmin + xmax) / 2
	yc := (ymin + ymax) / 2
	p.X.Min, p.X.Max = xc-span/2, xc+span/2
	p.Y.Min, p.Y.Max = yc-span/2, yc+span/2

	if err := p.Save(8*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}
