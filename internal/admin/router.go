// Package admin exposes the consumer's operational HTTP surface: the
// healthcheck probed by the platform and the Prometheus metrics endpoint.
package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the admin endpoints.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthcheck", handleHealthcheck)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func handleHealthcheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "UP"})
}
