package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/eyamansouri/matchboard/pkg/metrics"
)

// handleHealth handles GET /healthz by serving the custom metrics
// registry; a scrapeable response doubles as the liveness signal.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
