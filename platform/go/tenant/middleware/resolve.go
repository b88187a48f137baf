package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	platformlogging "github.com/orgsites/federation/platform/go/logging"
	"github.com/orgsites/federation/platform/go/tenant"
)

// Config controls resolver middleware behavior.
type Config struct {
	// DefaultID receives the redirect when the path segment does not name a
	// known tenant. The default is fixed; it is never derived from the
	// invalid input.
	DefaultID tenant.ID
	// URLParam is the chi route parameter holding the raw tenant segment.
	URLParam string
}

// ResolveSite reads the tenant path segment from the route, resolves it
// against the registry and attaches the record to the request context.
// Unknown segments are not surfaced as errors: the request is answered
// with a redirect to the default tenant's base path and nothing renders
// under the invalid segment. Callers must preserve this redirect policy;
// substituting a not-found page changes the observed contract.
func ResolveSite(registry *tenant.Registry, cfg Config) func(http.Handler) http.Handler {
	if registry == nil {
		panic("tenant middleware: registry is required")
	}
	if _, ok := tenant.ParseID(string(cfg.DefaultID)); !ok {
		panic("tenant middleware: default id must be a known tenant")
	}
	param := cfg.URLParam
	if param == "" {
		param = "tenantID"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			segment := chi.URLParam(r, param)

			record, ok := registry.Resolve(segment)
			if !ok {
				if logger := platformlogging.FromRequest(r, nil); logger != nil {
					logger.Debug("unknown tenant segment, redirecting to default",
						zap.String("segment", segment),
						zap.String("default", cfg.DefaultID.String()),
					)
				}
				http.Redirect(w, r, cfg.DefaultID.BasePath(), http.StatusFound)
				return
			}

			ctx := tenant.WithRecord(r.Context(), record)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
