// Package file persists the user collection as a single JSON document on
// disk: one object mapping user id to user record. Every mutation rewrites
// the whole file synchronously, so a successful call is durable before it
// returns.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
)

// Store is a file-backed ports.UserRepository. Safe for concurrent use;
// reads and writes on the one file are serialized by a mutex.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore opens (or creates) the users file at path. A missing file is
// seeded with a small default user set so a fresh deployment is usable
// immediately.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageUnavailable, path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrStorageUnavailable, filepath.Dir(path), err)
		}
		if err := s.write(defaultUsers()); err != nil {
			return nil, err
		}
	}

	// Validate the file decodes before accepting it.
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new user. Fails with domain.ErrUserExists on an id
// collision; the file is untouched in that case.
func (s *Store) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	if _, ok := users[user.ID]; ok {
		return nil, domain.ErrUserExists
	}

	users[user.ID] = user
	if err := s.write(users); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// Find returns the user for id or domain.ErrUserNotFound.
func (s *Store) Find(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	user, ok := users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// FindAll returns the full id→user collection.
func (s *Store) FindAll(_ context.Context) (map[string]*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Update replaces an existing user. Not an upsert: fails with
// domain.ErrUserNotFound when the id is absent.
func (s *Store) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.read()
	if err != nil {
		return nil, err
	}
	if _, ok := users[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}

	users[user.ID] = user
	if err := s.write(users); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// Ping reports whether the backing file is readable. Used by the readiness
// probe.
func (s *Store) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.read()
	return err
}

func (s *Store) read() (map[string]*domain.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}

	users := make(map[string]*domain.User)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return users, nil
}

func (s *Store) write(users map[string]*domain.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode users: %v", domain.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return nil
}

func defaultUsers() map[string]*domain.User {
	anna := domain.NewUser("123")
	anna.Name = "Anna"
	anna.Role = domain.RoleNonAdministrator

	bob := domain.NewUser("1234")
	bob.Name = "Bob"
	bob.Role = domain.RoleAdministrator

	charlie := domain.NewUser("987654321")
	charlie.Name = "Charlie"
	charlie.Role = domain.RoleNonAdministrator

	return map[string]*domain.User{
		anna.ID:    anna,
		bob.ID:     bob,
		charlie.ID: charlie,
	}
}
