package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
)

// AuthService implements credential registration and login for the
// protected admin surface. Registration binds a password to a user that
// already exists in the user store; the user record itself is untouched so
// the persisted users layout stays flat.
type AuthService struct {
	creds     ports.CredentialsRepository
	users     ports.UserRepository
	clock     Clock
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(creds ports.CredentialsRepository, users ports.UserRepository, clock Clock, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if clock == nil {
		clock = SystemClock()
	}
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{creds: creds, users: users, clock: clock, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register stores a bcrypt hash for userID. The user must already exist.
func (s *AuthService) Register(ctx context.Context, userID, password string) error {
	if userID == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	if _, err := s.users.Find(ctx, userID); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	return s.creds.Create(ctx, &domain.Credentials{
		UserID:       userID,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// Login verifies the password for userID and returns a signed token plus
// the user record the claims were drawn from.
func (s *AuthService) Login(ctx context.Context, userID, password string) (string, *domain.User, error) {
	if userID == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	creds, err := s.creds.FindByUserID(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.Find(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     s.clock.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
