package handler

import "net/http"

// HealthyBody is the rendered text of a successful liveness probe.
const HealthyBody = "Healthy"

// HealthHandler serves the liveness probe endpoint.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler { return &HealthHandler{} }

// Health answers GET /health with an HTML "Healthy" and ignores the request.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondHTML(w, http.StatusOK, HealthyBody)
}
