package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/orgsites/federation/domains/sites/be/service"
	platformlogging "github.com/orgsites/federation/platform/go/logging"
)

// Handler serves the page view models. Every tenant-scoped route relies on
// the resolver middleware having placed the record in context.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("sites service is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Handler{svc: svc, logger: logger}
}

// Landing implements GET /, the tenant selection entry point.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Landing(r.Context()))
}

// Register adds the tenant-scoped page routes to the resolved tenant
// sub-router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/about", h.about)
	r.Get("/leadership", h.leadership)
	r.Get("/campaigns", h.campaigns)
	r.Get("/join", h.join)
	r.Get("/contact", h.contact)
}

// NotFound answers any path outside the known URL surface.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusNotFound, map[string]string{
		"title":  "Page not found",
		"detail": "The page you are looking for does not exist.",
	})
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Home(r.Context(), r.URL.Path))
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.About(r.Context(), r.URL.Path))
}

func (h *Handler) leadership(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Leadership(r.Context(), r.URL.Path))
}

func (h *Handler) campaigns(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Campaigns(r.Context(), r.URL.Path))
}

func (h *Handler) join(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Join(r.Context(), r.URL.Path))
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Contact(r.Context(), r.URL.Path))
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		platformlogging.FromRequest(r, h.logger).Error("encode response", zap.Error(err))
	}
}
