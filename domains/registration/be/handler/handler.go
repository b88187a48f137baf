package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orgsites/federation/domains/registration/be/service"
	platformlogging "github.com/orgsites/federation/platform/go/logging"
	"github.com/orgsites/federation/platform/go/tenant"
)

const (
	problemTypeValidation = "https://orgsites.dev/problems/validation-error"
	problemTypeNotFound   = "https://orgsites.dev/problems/not-found"
	problemTypeConflict   = "https://orgsites.dev/problems/conflict"
	problemTypeInternal   = "https://orgsites.dev/problems/internal-error"
)

// Handler exposes the registration form state machine over HTTP. All
// routes live under a resolved tenant scope.
type Handler struct {
	svc    service.Service
	logger *zap.Logger
}

// New constructs a Handler instance.
func New(svc service.Service, logger *zap.Logger) *Handler {
	if svc == nil {
		panic("registration service is required")
	}
	if logger == nil {
		panic("logger is required")
	}
	return &Handler{svc: svc, logger: logger}
}

// Routes returns the session sub-router, mounted at .../join/sessions.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.createSession)
	r.Get("/{sessionID}", h.getSession)
	r.Patch("/{sessionID}", h.editField)
	r.Post("/{sessionID}/submit", h.submit)
	r.Delete("/{sessionID}", h.discard)
	return r
}

type sessionResponse struct {
	ID           string            `json:"id"`
	TenantID     string            `json:"tenantId"`
	State        string            `json:"state"`
	Draft        draftResponse     `json:"draft"`
	Errors       map[string]string `json:"errors"`
	Confirmation *confirmation     `json:"confirmation,omitempty"`
}

type draftResponse struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	MembershipType string `json:"membershipType"`
	Message        string `json:"message"`
}

// confirmation is the terminal-state view: the snapshot enriched with the
// tenant copy used by the success screen.
type confirmation struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	ShortName string `json:"shortName"`
	Tagline   string `json:"tagline"`
}

type editFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	site := tenant.MustFromContext(r.Context())

	session, err := h.svc.Start(r.Context(), site.ID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusCreated, session, site)
}

func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	site := tenant.MustFromContext(r.Context())

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusOK, session, site)
}

func (h *Handler) editField(w http.ResponseWriter, r *http.Request) {
	site := tenant.MustFromContext(r.Context())

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req editFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeProblem(w, r, http.StatusBadRequest, problemTypeValidation, "Invalid request body", err.Error())
		return
	}

	session, err := h.svc.EditField(r.Context(), id, req.Field, req.Value)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusOK, session, site)
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	site := tenant.MustFromContext(r.Context())

	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSession(w, r, http.StatusOK, session, site)
}

func (h *Handler) discard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Discard(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "sessionID")
	id, err := uuid.Parse(raw)
	if err != nil {
		h.writeProblem(w, r, http.StatusBadRequest, problemTypeValidation, "Invalid session id", fmt.Sprintf("%q is not a session id", raw))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, status int, session service.Session, site tenant.Record) {
	resp := sessionResponse{
		ID:       session.ID.String(),
		TenantID: session.Draft.TenantID.String(),
		State:    string(session.State),
		Draft: draftResponse{
			Name:           session.Draft.Name,
			Email:          session.Draft.Email,
			Phone:          session.Draft.Phone,
			MembershipType: string(session.Draft.MembershipType),
			Message:        session.Draft.Message,
		},
		Errors: session.Errors,
	}
	if session.Snapshot != nil {
		resp.Confirmation = &confirmation{
			Name:      session.Snapshot.Name,
			Email:     session.Snapshot.Email,
			ShortName: site.ShortName,
			Tagline:   site.Tagline,
		}
	}

	writeJSON(w, r, h.logger, status, resp)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		h.writeProblem(w, r, http.StatusNotFound, problemTypeNotFound, "Session not found", err.Error())
	case errors.Is(err, service.ErrSubmitted):
		h.writeProblem(w, r, http.StatusConflict, problemTypeConflict, "Session already submitted", err.Error())
	case errors.Is(err, service.ErrUnknownField):
		h.writeProblem(w, r, http.StatusBadRequest, problemTypeValidation, "Invalid field", err.Error())
	default:
		platformlogging.FromRequest(r, h.logger).Error("registration request failed", zap.Error(err))
		h.writeProblem(w, r, http.StatusInternalServerError, problemTypeInternal, "Internal error", "unexpected error")
	}
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func (h *Handler) writeProblem(w http.ResponseWriter, r *http.Request, status int, typ, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: typ, Title: title, Detail: detail, Status: status}); err != nil {
		platformlogging.FromRequest(r, h.logger).Error("encode problem response", zap.Error(err))
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		platformlogging.FromRequest(r, logger).Error("encode response", zap.Error(err))
	}
}
