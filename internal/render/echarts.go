package render

import (
	"fmt"
	"io"

	"github.com/banshee-data/blobfield/internal/blob"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderHTML writes an interactive chart of the blob to w: one scatter
// series for the units overlapped with one line series per isoline
// polyline. Axis ranges are symmetric around the grid center with a small
// padding, and the chart is square, so the aspect ratio stays equal.
func RenderHTML(f *blob.Field, units []blob.Unit, threshold float64, w io.Writer) error {
	lines := Isolines(f, threshold)

	unitData := make([]opts.ScatterData, 0, len(units))
	for _, u := range units {
		unitData = append(unitData, opts.ScatterData{Value: []interface{}{u.X, u.Y}})
	}

	// Pad both axes to the larger span so the square chart keeps x and y
	// units visually uniform.
	xmin, xmax, ymin, ymax := f.Grid.Bounds()
	span := xmax - xmin
	if ys := ymax - ymin; ys > span {
		span = ys
	}
	pad := span * 1.05 / 2
	xc := (xmin + xmax) / 2
	yc := (ymin + ymax) / 2

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: PlotTitle,
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    PlotTitle,
			Subtitle: fmt.Sprintf("units=%d threshold=%.3f isolines=%d", len(units), threshold, len(lines)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: xc - pad, Max: xc + pad, Name: "X", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: yc - pad, Max: yc + pad, Name: "Y", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("units", unitData, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}))

	blobLines := charts.NewLine()
	for i, line := range lines {
		lineData := make([]opts.LineData, 0, len(line))
		for _, pt := range line {
			lineData = append(lineData, opts.LineData{Value: []interface{}{pt.X, pt.Y}})
		}
		blobLines.AddSeries(
			fmt.Sprintf("blob %d", i+1),
			lineData,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false), Smooth: opts.Bool(true)}),
		)
	}
	scatter.Overlap(blobLines)

	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
