// Package health exposes liveness and readiness endpoints.
package health

import (
	"encoding/json"
	"net/http"
)

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	// Rules reports the number of loaded catalog rules; readiness requires
	// at least one.
	Rules func() int
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the loaded rule catalog.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	rules := 0
	if h.Rules != nil {
		rules = h.Rules()
	}
	status := map[string]any{"rules": rules}
	w.Header().Set("Content-Type", "application/json")
	if rules < 1 {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}
