package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

// SchemaValidator validates request bodies against the OpenAPI document
// before they reach the handlers. Handlers can therefore decode bodies
// without re-checking shape or types.
type SchemaValidator struct {
	router routers.Router
	logger *slog.Logger
}

// NewSchemaValidator builds a validator from a parsed OpenAPI document.
func NewSchemaValidator(doc *openapi3.T, logger *slog.Logger) (*SchemaValidator, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return &SchemaValidator{router: router, logger: logger}, nil
}

// Middleware returns the HTTP middleware. Requests that do not match
// any documented route pass through untouched; the mux decides their
// fate. Requests that match but carry a schema-invalid body are
// rejected with 400 before any handler runs.
func (v *SchemaValidator) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, pathParams, err := v.router.FindRoute(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: pathParams,
				Route:      route,
			}

			// ValidateRequest replaces r.Body with a replayable copy
			// after reading it, so the handler still sees the full body.
			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				v.logger.Warn("request failed schema validation",
					slog.String("request_id", GetRequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("error", err.Error()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Request body does not match schema","code":"INVALID_REQUEST"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
