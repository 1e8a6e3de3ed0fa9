package render

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/banshee-data/blobfield/internal/blob"
	"github.com/banshee-data/blobfield/internal/monitoring"
)

// PreviewServer serves the interactive HTML chart on a local address. The
// pipeline runs once per request, so with a time-based seed every reload
// shows a fresh blob; with a fixed seed reloads are identical.
type PreviewServer struct {
	addr   string
	params blob.Params
}

// NewPreviewServer creates a server for the given params.
func NewPreviewServer(addr string, p blob.Params) *PreviewServer {
	return &PreviewServer{addr: addr, params: p}
}

// Handler returns the HTTP handler serving the chart at /.
func (s *PreviewServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleBlob)
	return mux
}

// ListenAndServe blocks serving the chart until the listener fails.
func (s *PreviewServer) ListenAndServe() error {
	monitoring.Logf("preview server listening on http://%s", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

func (s *PreviewServer) handleBlob(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	units, field, err := blob.Run(s.params)
	if err != nil {
		http.Error(w, fmt.Sprintf("pipeline failed: %v", err), http.StatusInternalServerError)
		return
	}

	// Render to a buffer first so a render failure can still produce a
	// clean error response.
	var buf bytes.Buffer
	if err := RenderHTML(field, units, s.params.Threshold, &buf); err != nil {
		http.Error(w, fmt.Sprintf("failed to render chart: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
