package handlers

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Metrics tracks render outcomes. Counters only; exported in the Prometheus
// text format without pulling in the client library.
type Metrics struct {
	renders          atomic.Uint64
	encodingFailures atomic.Uint64
	assetRejections  atomic.Uint64
	surfaceFailures  atomic.Uint64
	invalidInputs    atomic.Uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) RecordRender()          { m.renders.Add(1) }
func (m *Metrics) RecordEncodingFailure() { m.encodingFailures.Add(1) }
func (m *Metrics) RecordAssetRejection()  { m.assetRejections.Add(1) }
func (m *Metrics) RecordSurfaceFailure()  { m.surfaceFailures.Add(1) }
func (m *Metrics) RecordInvalidInput()    { m.invalidInputs.Add(1) }

type MetricsHandler struct {
	metrics *Metrics
}

func NewMetricsHandler(metrics *Metrics) *MetricsHandler {
	return &MetricsHandler{metrics: metrics}
}

func (h *MetricsHandler) Export(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "# HELP qrstudio_up Is the server up\n")
	fmt.Fprintf(w, "# TYPE qrstudio_up gauge\n")
	fmt.Fprintf(w, "qrstudio_up 1\n")
	fmt.Fprintf(w, "# HELP qrstudio_renders_total Completed renders\n")
	fmt.Fprintf(w, "# TYPE qrstudio_renders_total counter\n")
	fmt.Fprintf(w, "qrstudio_renders_total %d\n", h.metrics.renders.Load())
	fmt.Fprintf(w, "# HELP qrstudio_render_failures_total Failed renders by cause\n")
	fmt.Fprintf(w, "# TYPE qrstudio_render_failures_total counter\n")
	fmt.Fprintf(w, "qrstudio_render_failures_total{cause=\"encoding\"} %d\n", h.metrics.encodingFailures.Load())
	fmt.Fprintf(w, "qrstudio_render_failures_total{cause=\"asset_too_large\"} %d\n", h.metrics.assetRejections.Load())
	fmt.Fprintf(w, "qrstudio_render_failures_total{cause=\"surface\"} %d\n", h.metrics.surfaceFailures.Load())
	fmt.Fprintf(w, "qrstudio_render_failures_total{cause=\"invalid_input\"} %d\n", h.metrics.invalidInputs.Load())
}
