package blob

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultParamsValid(t *testing.T) {
	p := DefaultParams()
	if err := p.Validate(); err != nil {
		t.Fatalf("default params should validate, got: %v", err)
	}

	if p.NumClusters != 4 {
		t.Errorf("expected 4 default clusters, got %d", p.NumClusters)
	}
	if p.UnitsPerCluster != 10 {
		t.Errorf("expected 10 default units per cluster, got %d", p.UnitsPerCluster)
	}
	if p.Sigma != 15.0 {
		t.Errorf("expected default sigma 15.0, got %f", p.Sigma)
	}
	if p.Threshold != 0.2 {
		t.Errorf("expected default threshold 0.2, got %f", p.Threshold)
	}
	if p.GridRes != 300 {
		t.Errorf("expected default grid_res 300, got %d", p.GridRes)
	}
	if p.Margin != 20.0 {
		t.Errorf("expected default margin 20.0, got %f", p.Margin)
	}
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Params)
		wantErr bool
	}{
		{"defaults", func(p *Params) {}, false},
		{"zero clusters", func(p *Params) { p.NumClusters = 0 }, true},
		{"negative clusters", func(p *Params) { p.NumClusters = -3 }, true},
		{"zero units per cluster", func(p *Params) { p.UnitsPerCluster = 0 }, true},
		{"zero sigma", func(p *Params) { p.Sigma = 0 }, true},
		{"negative sigma", func(p *Params) { p.Sigma = -1.5 }, true},
		{"threshold at zero", func(p *Params) { p.Threshold = 0 }, true},
		{"negative threshold", func(p *Params) { p.Threshold = -0.2 }, true},
		{"threshold NaN", func(p *Params) { p.Threshold = math.NaN() }, true},
		{"threshold infinite", func(p *Params) { p.Threshold = math.Inf(1) }, true},
		// At or above one is valid input; it just yields an empty contour.
		{"threshold at one", func(p *Params) { p.Threshold = 1.0 }, false},
		{"threshold above one", func(p *Params) { p.Threshold = 1.2 }, false},
		{"grid res of one", func(p *Params) { p.GridRes = 1 }, true},
		{"minimum grid res", func(p *Params) { p.GridRes = 2 }, false},
		{"negative margin", func(p *Params) { p.Margin = -1 }, true},
		{"zero margin", func(p *Params) { p.Margin = 0 }, false},
		{"fixed seed", func(p *Params) { p.Seed = 42 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestLoadParams_PartialOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.json")
	content := `{"sigma": 8.5, "grid_res": 120, "seed": 42}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write params file: %v", err)
	}

	p, err := LoadParams(path)
	if err != nil {
		t.Fatalf("LoadParams failed: %v", err)
	}

	// Overlaid values
	if p.Sigma != 8.5 {
		t.Errorf("expected sigma 8.5, got %f", p.Sigma)
	}
	if p.GridRes != 120 {
		t.Errorf("expected grid_res 120, got %d", p.GridRes)
	}
	if p.Seed != 42 {
		t.Errorf("expected seed 42, got %d", p.Seed)
	}

	// Defaults retained for omitted fields
	if p.NumClusters != 4 {
		t.Errorf("expected default num_clusters 4, got %d", p.NumClusters)
	}
	if p.Threshold != 0.2 {
		t.Errorf("expected default threshold 0.2, got %f", p.Threshold)
	}
}

func TestLoadParams_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadParams(filepath.Join(dir, "nope.json")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(dir, "params.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadParams(path); err == nil {
			t.Error("expected error for non-json extension")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadParams(path); err == nil {
			t.Error("expected error for malformed JSON")
		}
	})

	t.Run("invalid values rejected after overlay", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.json")
		if err := os.WriteFile(path, []byte(`{"sigma": -2.0}`), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadParams(path); err == nil {
			t.Error("expected validation error for negative sigma")
		}
	})
}
