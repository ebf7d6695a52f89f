package ports

import (
	"context"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
)

// UserRepository defines persistence operations for user records. Every
// mutating call is synchronously durable before it returns; there is no
// write buffering.
type UserRepository interface {
	// Create inserts a new record. Fails with domain.ErrUserExists when a
	// record with the same id is already present.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Find returns the record for id or domain.ErrUserNotFound.
	Find(ctx context.Context, id string) (*domain.User, error)
	// FindAll returns the full id→user collection. Used only by the
	// activity report.
	FindAll(ctx context.Context) (map[string]*domain.User, error)
	// Update replaces an existing record. Updates are not upserts: fails
	// with domain.ErrUserNotFound when no record has the user's id.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
}
