package ports

import (
	"context"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
)

// CredentialsRepository defines persistence for login credentials.
type CredentialsRepository interface {
	// Create stores credentials for a user id. Fails with
	// domain.ErrUserExists when credentials are already registered.
	Create(ctx context.Context, creds *domain.Credentials) error
	// FindByUserID returns the credentials for a user id or
	// domain.ErrUserNotFound.
	FindByUserID(ctx context.Context, userID string) (*domain.Credentials, error)
}

// AuthService defines registration and login for the optional protected
// surface. Registration binds a password to an already existing user; it
// never creates user records.
type AuthService interface {
	Register(ctx context.Context, userID, password string) error
	Login(ctx context.Context, userID, password string) (token string, user *domain.User, err error)
}
