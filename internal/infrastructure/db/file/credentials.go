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

// CredentialsStore is a file-backed ports.CredentialsRepository. Kept in a
// separate file from the users document so the users layout stays exactly
// the id→record map older deployments wrote.
type CredentialsStore struct {
	path string
	mu   sync.Mutex
}

// NewCredentialsStore opens (or creates) the credentials file at path.
func NewCredentialsStore(path string) (*CredentialsStore, error) {
	s := &CredentialsStore{path: path}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: stat %s: %v", domain.ErrStorageUnavailable, path, err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: create %s: %v", domain.ErrStorageUnavailable, filepath.Dir(path), err)
		}
		if err := s.write(map[string]*domain.Credentials{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *CredentialsStore) Create(_ context.Context, creds *domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := all[creds.UserID]; ok {
		return domain.ErrUserExists
	}

	all[creds.UserID] = creds
	return s.write(all)
}

func (s *CredentialsStore) FindByUserID(_ context.Context, userID string) (*domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.read()
	if err != nil {
		return nil, err
	}
	creds, ok := all[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return creds, nil
}

func (s *CredentialsStore) read() (map[string]*domain.Credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}

	all := make(map[string]*domain.Credentials)
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return all, nil
}

func (s *CredentialsStore) write(all map[string]*domain.Credentials) error {
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode credentials: %v", domain.ErrStorageUnavailable, err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorageUnavailable, s.path, err)
	}
	return nil
}
