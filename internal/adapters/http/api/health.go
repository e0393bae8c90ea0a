package api

import (
	"net/http"

	"github.com/okian/tuiermo/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler reports whether a session is hosted.
type HealthHandler struct {
	statsProvider StatsProvider
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(statsProvider StatsProvider) *HealthHandler {
	return &HealthHandler{statsProvider: statsProvider}
}

type healthResponse struct {
	Status string         `json:"status"`
	Stats  map[string]any `json:"stats,omitempty"`
}

// HandleHealth handles GET /healthz requests. The status is "ok" while a
// session is started and "idle" otherwise.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", ErrMethodNotAllowed)
		return
	}

	resp := healthResponse{Status: "idle"}
	if h.statsProvider != nil {
		resp.Stats = h.statsProvider.GetStats()
		if started, _ := resp.Stats["started"].(bool); started {
			resp.Status = "ok"
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// NewMetricsHandler serves the custom metrics registry.
func NewMetricsHandler() http.Handler {
	return promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})
}
