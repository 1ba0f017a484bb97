package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/psylines/psy-lines-backend/internal/api/handler"
	apimw "github.com/psylines/psy-lines-backend/internal/api/middleware"
)

// NewRouter wires the chi router and its middleware. GET /health is the only
// route; chi answers everything else with 404 or 405.
func NewRouter(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))

	hh := handler.NewHealthHandler()

	r.Get("/health", hh.Health)

	return r
}
