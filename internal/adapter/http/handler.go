package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"coinloop/internal/core/domain"
	"coinloop/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the economy usecase, an authenticator resolving the calling user
// and a logger for structured logging. Routes are registered on a
// chi.Router.
type Handler struct {
	svc          port.EconomyUseCase
	auth         Authenticator
	serviceToken []byte
	logger       *slog.Logger
	router       chi.Router
}

// Option configures a Handler.
type Option func(*Handler)

// WithServiceToken sets the shared secret that internal callers present in
// the X-Service-Token header. Without it the service routes refuse every
// request.
func WithServiceToken(token string) Option {
	return func(h *Handler) {
		h.serviceToken = []byte(token)
	}
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.EconomyUseCase, auth Authenticator, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, auth: auth, logger: logger}
	for _, opt := range opts {
		opt(h)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)

			r.Post("/users", h.handleRegisterUser)

			r.Get("/wallet", h.handleWallet)
			r.Get("/wallet/packages", h.handlePackages)
			r.Get("/wallet/reconcile", h.handleReconcile)
			r.Post("/wallet/credits", h.handleAddCredits)

			r.Get("/tasks", h.handleListTasks)
			r.Post("/tasks/{id}/complete", h.handleCompleteTask)
			r.Post("/tasks/{id}/skip", h.handleSkipTask)

			r.Get("/campaigns", h.handleListCampaigns)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Patch("/campaigns/{id}", h.handleUpdateCampaign)
			r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
			r.Post("/campaigns/{id}/toggle", h.handleToggleCampaign)
		})

		// Task supply and delivery reports come from the platform, never
		// from end users.
		r.Group(func(r chi.Router) {
			r.Use(h.authorizeService)

			r.Post("/tasks", h.handleSupplyTask)
			r.Post("/campaigns/{id}/completions", h.handleRecordCompletion)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// envelope is the body of every JSON response.
type envelope struct {
	Result       any                  `json:"result,omitempty"`
	Notification *domain.Notification `json:"notification,omitempty"`
	Error        string               `json:"error,omitempty"`
}

// statusFor maps the domain error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrCampaignExhausted), errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeOutcome renders a command result. Typed failures keep their
// notification; unexpected ones are logged and hidden behind a generic
// message.
func (h *Handler) writeOutcome(w http.ResponseWriter, r *http.Request, out *port.Outcome, err error) {
	var note *domain.Notification
	if out != nil {
		n := out.Notification
		note = &n
	}
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			h.logger.Error("command error", slog.String("path", r.URL.Path), slog.Any("error", err))
			msg = "internal error"
		}
		h.writeJSON(w, status, envelope{Notification: note, Error: msg})
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Result: out, Notification: note})
}

// writeQuery renders a read-side result.
func (h *Handler) writeQuery(w http.ResponseWriter, r *http.Request, result any, err error) {
	if err != nil {
		status := statusFor(err)
		msg := err.Error()
		if status == http.StatusInternalServerError {
			h.logger.Error("query error", slog.String("path", r.URL.Path), slog.Any("error", err))
			msg = "internal error"
		}
		h.writeJSON(w, status, envelope{Error: msg})
		return
	}
	h.writeJSON(w, http.StatusOK, envelope{Result: result})
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.Invalid("body", err.Error())
	}
	return nil
}
