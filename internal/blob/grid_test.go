package blob

import (
	"math"
	"testing"
)

func TestBuildGrid_Bounds(t *testing.T) {
	units := []Unit{
		{X: -10, Y: 5},
		{X: 30, Y: -15},
		{X: 2, Y: 40},
	}
	const margin = 20.0

	g, err := BuildGrid(units, margin, 50)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	xmin, xmax, ymin, ymax := g.Bounds()
	if xmin != -10-margin || xmax != 30+margin {
		t.Errorf("x bounds = (%f, %f), want (%f, %f)", xmin, xmax, -10-margin, 30+margin)
	}
	if ymin != -15-margin || ymax != 40+margin {
		t.Errorf("y bounds = (%f, %f), want (%f, %f)", ymin, ymax, -15-margin, 40+margin)
	}
}

func TestBuildGrid_SampleSpacing(t *testing.T) {
	units := []Unit{{X: 0, Y: 0}, {X: 10, Y: 10}}
	g, err := BuildGrid(units, 0, 11)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	if g.Res() != 11 {
		t.Fatalf("expected resolution 11, got %d", g.Res())
	}

	// 11 samples over [0,10] inclusive gives unit spacing
	for k, x := range g.XS {
		if math.Abs(x-float64(k)) > 1e-12 {
			t.Errorf("XS[%d] = %f, want %f", k, x, float64(k))
		}
	}
}

func TestBuildGrid_At(t *testing.T) {
	units := []Unit{{X: 0, Y: 0}, {X: 4, Y: 8}}
	g, err := BuildGrid(units, 0, 5)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	// Row index walks y, column index walks x.
	x, y := g.At(0, 4)
	if x != 4 || y != 0 {
		t.Errorf("At(0,4) = (%f, %f), want (4, 0)", x, y)
	}
	x, y = g.At(4, 0)
	if x != 0 || y != 8 {
		t.Errorf("At(4,0) = (%f, %f), want (0, 8)", x, y)
	}
}

func TestBuildGrid_Errors(t *testing.T) {
	if _, err := BuildGrid(nil, 20, 100); err == nil {
		t.Error("expected error for empty unit set")
	}
	if _, err := BuildGrid([]Unit{{X: 1, Y: 1}}, 20, 1); err == nil {
		t.Error("expected error for resolution below 2")
	}
}

func TestBuildGrid_SingleUnit(t *testing.T) {
	// A single unit has a degenerate bounding box; the margin is what
	// gives the grid extent.
	g, err := BuildGrid([]Unit{{X: 3, Y: -2}}, 20, 10)
	if err != nil {
		t.Fatalf("BuildGrid failed: %v", err)
	}

	xmin, xmax, ymin, ymax := g.Bounds()
	if xmin != -17 || xmax != 23 {
		t.Errorf("x bounds = (%f, %f), want (-17, 23)", xmin, xmax)
	}
	if ymin != -22 || ymax != 18 {
		t.Errorf("y bounds = (%f, %f), want (-22, 18)", ymin, ymax)
	}
}
