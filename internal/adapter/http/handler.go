package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"movo-ads/internal/auth"
	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

// TokenVerifier validates bearer tokens. *auth.JWTService implements it.
type TokenVerifier interface {
	ValidateToken(token string) (*auth.Claims, error)
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the use cases that execute business logic, the token verifier
// guarding every /api/v1 route and a logger for structured logging. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	ads      port.AdUseCase
	profiles port.ProfileUseCase
	verifier TokenVerifier
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Driver routes
// require a token with the driver role; the reporting routes (stats
// overview and play listing) require the operator role.
func NewHandler(ads port.AdUseCase, profiles port.ProfileUseCase, verifier TokenVerifier, logger *slog.Logger) *Handler {
	h := &Handler{ads: ads, profiles: profiles, verifier: verifier, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleDriver))
			r.Post("/ad/match", h.handleAdMatch)
			r.Post("/plays", h.handlePlay)
			r.Get("/plays/count", h.handlePlayCount)
			r.Get("/drivers/me/profile", h.handleGetProfile)
			r.Put("/drivers/me/profile", h.handlePutProfile)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(domain.RoleOperator))
			r.Get("/stats/overview", h.handleStatsOverview)
			r.Get("/plays", h.handleListPlays)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// writeJSON encodes v with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps use case errors to status codes. Validation errors carry
// their message; anything else is logged and reported opaquely.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidProfile):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
