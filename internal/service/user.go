// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/DanielOuteiro/fakecar-api/internal/generator"
	"github.com/DanielOuteiro/fakecar-api/internal/metrics"
	"github.com/DanielOuteiro/fakecar-api/internal/model"
	"github.com/DanielOuteiro/fakecar-api/internal/store"
)

// ErrUserNotFound is returned when no user exists under the given code.
var ErrUserNotFound = errors.New("user not found")

// Seed user constants. The bootstrap user is created once, before the
// server accepts requests.
const (
	seedUserName        = "John Doe"
	seedUserAge         = 30
	seedUserLanguage    = "English"
	seedUserNationality = "US"
	seedUserPhone       = "+11234567890"
)

// UserService handles user lifecycle and car updates.
type UserService struct {
	store   *store.Store
	cars    *generator.Generator
	codes   generator.CodeGenerator
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(st *store.Store, cars *generator.Generator, codes generator.CodeGenerator, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if codes == nil {
		codes = generator.FixedCodes{}
	}
	return &UserService{
		store:   st,
		cars:    cars,
		codes:   codes,
		metrics: recorder,
	}
}

// CreateUser builds a user with a generated code, a random identity
// profile and a freshly generated car, then inserts it. An existing
// entry under the same code is overwritten. Always succeeds.
func (s *UserService) CreateUser(ctx context.Context) (*model.User, error) {
	profile := s.cars.Profile()

	user := model.User{
		Code:        s.codes.Code(),
		Name:        profile.Name,
		Age:         profile.Age,
		Language:    profile.Language,
		Nationality: profile.Nationality,
		PhoneNumber: profile.PhoneNumber,
		Car:         s.generateCar(),
	}

	s.store.Put(user)
	s.metrics.IncUserCreated()
	return &user, nil
}

// GetUser returns the user stored under code.
func (s *UserService) GetUser(ctx context.Context, code string) (*model.User, error) {
	user, err := s.store.Get(code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.IncUserNotFound()
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every stored user. Order is unspecified.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.store.List(), nil
}

// UpdateCar replaces the car of the user stored under code wholesale
// with the supplied vehicle. The vehicle is stored exactly as given; no
// range or consistency checks apply beyond the structural typing the
// schema layer already enforced.
func (s *UserService) UpdateCar(ctx context.Context, code string, car model.Vehicle) (*model.User, error) {
	user, err := s.store.ReplaceCar(code, car)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.metrics.IncUserNotFound()
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	s.metrics.IncCarUpdated()
	return &user, nil
}

// Seed inserts the bootstrap user. Runs once at startup, before any
// request is served.
func (s *UserService) Seed(ctx context.Context) (*model.User, error) {
	user := model.User{
		Code:        s.codes.Code(),
		Name:        seedUserName,
		Age:         seedUserAge,
		Language:    seedUserLanguage,
		Nationality: seedUserNationality,
		PhoneNumber: seedUserPhone,
		Car:         s.generateCar(),
	}

	s.store.Put(user)
	return &user, nil
}

func (s *UserService) generateCar() model.Vehicle {
	start := time.Now()
	car := s.cars.Car()
	s.metrics.ObserveCarGeneration(time.Since(start))
	return car
}
