package render

import (
	"fmt"

	"github.com/banshee-data/blobfield/internal/blob"
)

// Point is a vertex on an isoline, in grid coordinates.
type Point struct {
	X float64
	Y float64
}

// segment is one isoline piece crossing a single grid cell.
type segment struct {
	a Point
	b Point
}

// Isolines extracts the level set of the field as polylines using marching
// squares with linear interpolation along cell edges. Loops that close
// inside the grid come back as closed polylines (first point repeated at the
// end); lines that leave through the grid boundary stay open. A level
// outside the field's value range yields no polylines, which is a valid
// silent outcome rather than an error.
//
// The gonum/plot contour plotter draws the same level set directly onto a
// canvas but does not expose the vertices, so the HTML renderer needs this
// explicit pass.
func Isolines(f *blob.Field, level float64) [][]Point {
	segs := collectSegments(f, level)
	return chainSegments(segs)
}

// collectSegments walks every grid cell and emits the isoline segments
// crossing it. Cell corners are indexed the way the field is: row i walks
// the y axis, column j the x axis.
func collectSegments(f *blob.Field, level float64) []segment {
	res := f.Grid.Res()
	var segs []segment

	for i := 0; i < res-1; i++ {
		for j := 0; j < res-1; j++ {
			// Corner values and positions for cell (i, j).
			v00 := f.At(i, j)     // (x[j],   y[i])
			v01 := f.At(i, j+1)   // (x[j+1], y[i])
			v11 := f.At(i+1, j+1) // (x[j+1], y[i+1])
			v10 := f.At(i+1, j)   // (x[j],   y[i+1])

			x0, y0 := f.Grid.At(i, j)
			x1, y1 := f.Grid.At(i+1, j+1)

			// Strictly-above keeps a level of exactly 1.0 empty: the
			// normalized peak touches but never exceeds it.
			mask := 0
			if v00 > level {
				mask |= 1
			}
			if v01 > level {
				mask |= 2
			}
			if v11 > level {
				mask |= 4
			}
			if v10 > level {
				mask |= 8
			}
			if mask == 0 || mask == 15 {
				continue
			}

			// Interpolated crossing on each cell edge.
			top := func() Point { return Point{X: lerp(x0, x1, v00, v01, level), Y: y0} }
			bottom := func() Point { return Point{X: lerp(x0, x1, v10, v11, level), Y: y1} }
			left := func() Point { return Point{X: x0, Y: lerp(y0, y1, v00, v10, level)} }
			right := func() Point { return Point{X: x1, Y: lerp(y0, y1, v01, v11, level)} }

			switch mask {
			case 1, 14:
				segs = append(segs, segment{top(), left()})
			case 2, 13:
				segs = append(segs, segment{top(), right()})
			case 3, 12:
				segs = append(segs, segment{left(), right()})
			case 4, 11:
				segs = append(segs, segment{right(), bottom()})
			case 6, 9:
				segs = append(segs, segment{top(), bottom()})
			case 7, 8:
				segs = append(segs, segment{left(), bottom()})
			case 5, 10:
				// Saddle cell: disambiguate with the center average.
				center := (v00 + v01 + v11 + v10) / 4
				if (mask == 5) == (center > level) {
					segs = append(segs, segment{top(), right()}, segment{left(), bottom()})
				} else {
					segs = append(segs, segment{top(), left()}, segment{right(), bottom()})
				}
			}
		}
	}

	return segs
}

// lerp finds the coordinate where the level crosses the edge between two
// corner samples.
func lerp(p0, p1, v0, v1, level float64) float64 {
	if v1 == v0 {
		return (p0 + p1) / 2
	}
	t := (level - v0) / (v1 - v0)
	return p0 + t*(p1-p0)
}

// chainSegments joins segments that share endpoints into polylines.
// Endpoints are matched on a quantized key so the floating point results of
// neighbouring cells line up.
func chainSegments(segs []segment) [][]Point {
	type end struct {
		seg int
		pt  Point
	}
	byKey := make(map[string][]end, len(segs)*2)
	key := func(p Point) string {
		return fmt.Sprintf("%.9e,%.9e", p.X, p.Y)
	}
	for i, s := range segs {
		byKey[key(s.a)] = append(byKey[key(s.a)], end{seg: i, pt: s.b})
		byKey[key(s.b)] = append(byKey[key(s.b)], end{seg: i, pt: s.a})
	}

	used := make([]bool, len(segs))
	var lines [][]Point

	// walk extends a polyline from pt until no unused segment continues it.
	walk := func(pt Point, line []Point) []Point {
		for {
			var next *end
			for i := range byKey[key(pt)] {
				e := &byKey[key(pt)][i]
				if !used[e.seg] {
					next = e
					break
				}
			}
			if next == nil {
				return line
			}
			used[next.seg] = true
			pt = next.pt
			line = append(line, pt)
		}
	}

	for i, s := range segs {
		if used[i] {
			continue
		}
		used[i] = true
		// Extend forward from b, then backward from a.
		forward := walk(s.b, []Point{s.a, s.b})
		backward := walk(s.a, nil)

		line := make([]Point, 0, len(forward)+len(backward))
		for k := len(backward) - 1; k >= 0; k-- {
			line = append(line, backward[k])
		}
		line = append(line, forward...)
		lines = append(lines, line)
	}

	return lines
}

// Closed reports whether a polyline ends where it starts.
func Closed(line []Point) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] == line[len(line)-1]
}
