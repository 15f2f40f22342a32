package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DanielOuteiro/fakecar-api/internal/model"
	"github.com/DanielOuteiro/fakecar-api/internal/service"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	svc    *service.UserService
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc *service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		svc:    svc,
		logger: logger,
	}
}

// Create handles POST /users/create.
// The request carries no body; every field of the new user is sampled
// server-side.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.CreateUser(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user_created",
		"code", user.Code,
		"car_brand", user.Car.Brand,
		"car_model", user.Car.Model,
	)

	writeJSON(w, http.StatusCreated, user)
}

// Get handles GET /users/{code}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	user, err := h.svc.GetUser(r.Context(), code)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.ListUsers(r.Context())
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// UpdateCar handles PUT /users/{code}/car/update.
// The body was already checked against the Vehicle schema by the
// validation middleware, so a decode failure here is a plain 400.
func (h *UserHandler) UpdateCar(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var car model.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	user, err := h.svc.UpdateCar(r.Context(), code, car)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("car_updated", "code", user.Code, "vin", user.Car.VIN)

	writeJSON(w, http.StatusOK, user)
}

// handleServiceError maps service errors to HTTP responses.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
