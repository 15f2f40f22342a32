package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/DanielOuteiro/fakecar-api/api"
	"github.com/DanielOuteiro/fakecar-api/internal/generator"
	"github.com/DanielOuteiro/fakecar-api/internal/model"
)

func newValidator(t *testing.T) *SchemaValidator {
	t.Helper()

	doc, err := api.Load(context.Background())
	if err != nil {
		t.Fatalf("failed to load openapi document: %v", err)
	}

	v, err := NewSchemaValidator(doc, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("failed to build validator: %v", err)
	}
	return v
}

// validatedRouter wires the validator in front of a handler that counts
// how often it was reached.
func validatedRouter(t *testing.T, reached *int) http.Handler {
	t.Helper()

	r := chi.NewRouter()
	r.Use(newValidator(t).Middleware())
	r.Put("/users/{code}/car/update", func(w http.ResponseWriter, req *http.Request) {
		*reached++
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/unrelated", func(w http.ResponseWriter, req *http.Request) {
		*reached++
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestSchemaValidator_ValidBodyPassesThrough(t *testing.T) {
	reached := 0
	r := validatedRouter(t, &reached)

	car := generator.New(1).Car()
	body, err := json.Marshal(car)
	if err != nil {
		t.Fatalf("marshal car: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/users/aaaaaa/car/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if reached != 1 {
		t.Errorf("expected handler to run once, ran %d times", reached)
	}
}

// TestSchemaValidator_MissingFieldRejected covers the core contract:
// a vehicle body missing a required field never reaches the handler.
func TestSchemaValidator_MissingFieldRejected(t *testing.T) {
	reached := 0
	r := validatedRouter(t, &reached)

	car := generator.New(1).Car()
	raw, err := json.Marshal(car)
	if err != nil {
		t.Fatalf("marshal car: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal car: %v", err)
	}
	delete(fields, "battery_capacity")
	body, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("re-marshal car: %v", err)
	}

	req := httptest.NewRequest(http.MethodPut, "/users/aaaaaa/car/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if reached != 0 {
		t.Errorf("handler must not run for a schema-invalid body, ran %d times", reached)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if resp["code"] != "INVALID_REQUEST" {
		t.Errorf("unexpected error code %q", resp["code"])
	}
}

func TestSchemaValidator_WrongTypeRejected(t *testing.T) {
	reached := 0
	r := validatedRouter(t, &reached)

	car := generator.New(1).Car()
	raw, _ := json.Marshal(car)
	var fields map[string]any
	_ = json.Unmarshal(raw, &fields)
	fields["speed"] = "fast"
	body, _ := json.Marshal(fields)

	req := httptest.NewRequest(http.MethodPut, "/users/aaaaaa/car/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if reached != 0 {
		t.Error("handler must not run for a type-invalid body")
	}
}

func TestSchemaValidator_UndocumentedRoutePassesThrough(t *testing.T) {
	reached := 0
	r := validatedRouter(t, &reached)

	req := httptest.NewRequest(http.MethodGet, "/unrelated", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for undocumented route, got %d", rec.Code)
	}
	if reached != 1 {
		t.Error("undocumented route must pass through to the handler")
	}
}

// Out-of-range values are structurally valid; only the generator
// constrains ranges, never the update path.
func TestSchemaValidator_OutOfRangeValuesAccepted(t *testing.T) {
	reached := 0
	r := validatedRouter(t, &reached)

	car := generator.New(1).Car()
	car.StateOfCharge = 400
	car.Year = 1885
	car.ChargingStatus = model.ChargingStatus("Time Traveling")
	body, _ := json.Marshal(car)

	req := httptest.NewRequest(http.MethodPut, "/users/aaaaaa/car/update", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for out-of-range values, got %d: %s", rec.Code, rec.Body.String())
	}
	if reached != 1 {
		t.Error("expected handler to run")
	}
}
