package blob

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Params holds the pipeline tuning values. All values are fixed before a run
// and validated up front; nothing mutates them afterwards.
type Params struct {
	// NumClusters is the number of distinct point groups to generate.
	NumClusters int `json:"num_clusters"`

	// UnitsPerCluster is the number of points generated around each
	// cluster center.
	UnitsPerCluster int `json:"units_per_cluster"`

	// Sigma is the Gaussian kernel width. Larger values merge clusters
	// into one blob; smaller values separate them.
	Sigma float64 `json:"sigma"`

	// Threshold is the isocontour level over the normalized field. Lower
	// values produce thinner connecting bridges between clusters, higher
	// values a tighter blob around each cluster. Meaningful range (0, 1).
	Threshold float64 `json:"threshold"`

	// GridRes is the per-axis sampling resolution of the field grid.
	// Higher means a smoother contour and more computation.
	GridRes int `json:"grid_res"`

	// Margin expands the unit bounding box before the grid is built.
	Margin float64 `json:"margin"`

	// Seed drives unit generation. Zero selects a time-based seed, so
	// each run places clusters differently; any other value makes the
	// run reproducible.
	Seed uint64 `json:"seed"`
}

// paramsFile mirrors Params with pointer fields so a partial JSON file can
// overlay only the values it names. The schema matches the flag names of
// cmd/blobfield.
type paramsFile struct {
	NumClusters     *int     `json:"num_clusters,omitempty"`
	UnitsPerCluster *int     `json:"units_per_cluster,omitempty"`
	Sigma           *float64 `json:"sigma,omitempty"`
	Threshold       *float64 `json:"threshold,omitempty"`
	GridRes         *int     `json:"grid_res,omitempty"`
	Margin          *float64 `json:"margin,omitempty"`
	Seed            *uint64  `json:"seed,omitempty"`
}

// DefaultParams returns the standard tuning: four clusters of ten units,
// sigma 15, threshold 0.2, a 300x300 grid with a margin of 20.
func DefaultParams() Params {
	return Params{
		NumClusters:     4,
		UnitsPerCluster: 10,
		Sigma:           15.0,
		Threshold:       0.2,
		GridRes:         300,
		Margin:          20.0,
	}
}

// LoadParams reads a JSON params file and overlays it onto the defaults.
// Fields omitted from the file keep their default values, so partial
// configs are safe. The file must have a .json extension and stay under
// the max file size.
func LoadParams(path string) (Params, error) {
	p := DefaultParams()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return p, fmt.Errorf("params file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return p, fmt.Errorf("failed to stat params file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return p, fmt.Errorf("params file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return p, fmt.Errorf("failed to read params file: %w", err)
	}

	var overlay paramsFile
	if err := json.Unmarshal(data, &overlay); err != nil {
		return p, fmt.Errorf("failed to parse params JSON: %w", err)
	}

	if overlay.NumClusters != nil {
		p.NumClusters = *overlay.NumClusters
	}
	if overlay.UnitsPerCluster != nil {
		p.UnitsPerCluster = *overlay.UnitsPerCluster
	}
	if overlay.Sigma != nil {
		p.Sigma = *overlay.Sigma
	}
	if overlay.Threshold != nil {
		p.Threshold = *overlay.Threshold
	}
	if overlay.GridRes != nil {
		p.GridRes = *overlay.GridRes
	}
	if overlay.Margin != nil {
		p.Margin = *overlay.Margin
	}
	if overlay.Seed != nil {
		p.Seed = *overlay.Seed
	}

	if err := p.Validate(); err != nil {
		return p, fmt.Errorf("invalid params: %w", err)
	}

	return p, nil
}

// Validate checks the parameter values and rejects degenerate combinations
// before the pipeline runs. A zero unit count or non-positive sigma would
// otherwise surface as NaNs during field normalization.
func (p Params) Validate() error {
	if p.NumClusters < 1 {
		return fmt.Errorf("num_clusters must be at least 1, got %d", p.NumClusters)
	}
	if p.UnitsPerCluster < 1 {
		return fmt.Errorf("units_per_cluster must be at least 1, got %d", p.UnitsPerCluster)
	}
	if p.Sigma <= 0 {
		return fmt.Errorf("sigma must be positive, got %f", p.Sigma)
	}
	// A threshold at or above 1 is allowed: the normalized field never
	// strictly exceeds 1.0, so the contour comes out empty, which is a
	// valid silent outcome rather than an error.
	if p.Threshold <= 0 || math.IsNaN(p.Threshold) || math.IsInf(p.Threshold, 0) {
		return fmt.Errorf("threshold must be positive and finite, got %f", p.Threshold)
	}
	if p.GridRes < 2 {
		return fmt.Errorf("grid_res must be at least 2, got %d", p.GridRes)
	}
	if p.Margin < 0 {
		return fmt.Errorf("margin must be non-negative, got %f", p.Margin)
	}
	return nil
}
