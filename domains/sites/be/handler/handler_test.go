package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/orgsites/federation/domains/sites/be/service"
	"github.com/orgsites/federation/platform/go/tenant"
	tenantmiddleware "github.com/orgsites/federation/platform/go/tenant/middleware"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	registry, err := tenant.NewRegistry()
	require.NoError(t, err)

	h := New(service.New(registry), zaptest.NewLogger(t))

	router := chi.NewRouter()
	router.Get("/", h.Landing)
	router.Route("/{tenantID}", func(r chi.Router) {
		r.Use(tenantmiddleware.ResolveSite(registry, tenantmiddleware.Config{DefaultID: tenant.AISF}))
		h.Register(r)
		r.NotFound(h.NotFound)
	})
	router.NotFound(h.NotFound)
	return router
}

func get(t *testing.T, server http.Handler, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestLanding(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec, body := get(t, server, "/")

	require.Equal(t, http.StatusOK, rec.Code)
	tenants, ok := body["tenants"].([]any)
	require.True(t, ok)
	require.Len(t, tenants, 2)
}

func TestTenantPages(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)

	for _, path := range []string{"/aiyf", "/aiyf/about", "/aiyf/leadership", "/aiyf/campaigns", "/aiyf/join", "/aiyf/contact"} {
		rec, body := get(t, server, path)
		require.Equal(t, http.StatusOK, rec.Code, "path %s", path)

		chrome, ok := body["chrome"].(map[string]any)
		require.True(t, ok, "path %s must carry chrome", path)

		summary, ok := chrome["tenant"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "aiyf", summary["id"])
	}
}

func TestUnknownTenantRedirects(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec, _ := get(t, server, "/aisf2/about")

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/aisf", rec.Header().Get("Location"))
}

func TestUnknownPageWithinTenantScope(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	rec, body := get(t, server, "/aisf/unknown")

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Page not found", body["title"])
}
