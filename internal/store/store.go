// Package store provides the in-memory user collection.
// Entries live for the process lifetime; there is no persistence and no
// delete operation.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/DanielOuteiro/fakecar-api/internal/model"
)

// ErrNotFound is returned when a lookup-by-code misses.
var ErrNotFound = errors.New("user not found")

// Store is a mutex-guarded map from user code to user record.
// The lock exists for map memory safety; read-modify-write sequences
// spanning multiple calls are not atomic.
type Store struct {
	mu    sync.RWMutex
	users map[string]model.User
}

// New creates an empty Store.
func New() *Store {
	return &Store{users: make(map[string]model.User)}
}

// Put inserts or overwrites the entry keyed by u.Code.
func (s *Store) Put(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Code] = u
}

// Get returns the user stored under code, or ErrNotFound.
func (s *Store) Get(code string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[code]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// List returns every stored user. Order is unspecified.
func (s *Store) List() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users
}

// ReplaceCar swaps the car record of the user stored under code
// wholesale and returns the updated user, or ErrNotFound if the code is
// absent. The store is left untouched on a miss.
func (s *Store) ReplaceCar(code string, car model.Vehicle) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[code]
	if !ok {
		return model.User{}, ErrNotFound
	}
	u.Car = car
	s.users[code] = u
	return u, nil
}

// Len returns the number of stored users.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Ping reports whether the store is usable. It exists so the readiness
// probe can treat the store like any other dependency.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.users == nil {
		return errors.New("store not initialized")
	}
	return nil
}
