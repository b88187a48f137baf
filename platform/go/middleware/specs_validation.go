package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	oapimiddleware "github.com/oapi-codegen/nethttp-middleware"
)

// NewSpecValidator loads an embedded OpenAPI document and builds request
// validation middleware for the route group it guards. Requests that do
// not match the contract never reach the handlers.
func NewSpecValidator(ctx context.Context, specYAML []byte) (func(http.Handler) http.Handler, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	spec, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("load openapi spec: %w", err)
	}
	if err := spec.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi spec: %w", err)
	}

	return oapimiddleware.OapiRequestValidator(spec), nil
}
