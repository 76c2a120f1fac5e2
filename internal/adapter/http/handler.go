package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-roi/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving the dashboard API. Routes are registered on a chi.Router.
type Handler struct {
	svc          port.PlanUseCase
	logger       *slog.Logger
	validate     *validator.Validate
	maxBodyBytes int64
	router       chi.Router
}

// NewHandler creates a handler with all routes configured. gatherer backs
// the /metrics endpoint; maxBodyBytes caps uploads when positive.
func NewHandler(svc port.PlanUseCase, logger *slog.Logger, gatherer prometheus.Gatherer, maxBodyBytes int64) *Handler {
	h := &Handler{
		svc:          svc,
		logger:       logger,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		maxBodyBytes: maxBodyBytes,
	}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/performance", h.handleIngest)
		r.Post("/plans", h.handleRun)
		r.Post("/plans/preview", h.handlePreview)
		r.Get("/plans/latest", h.handleLatestPlan)
		r.Get("/plans/{id}", h.handleGetPlan)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
