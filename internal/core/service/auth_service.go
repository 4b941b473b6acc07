package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
)

// AuthService implements the session gate over the credential store.
type AuthService struct {
	repo      ports.AuthRepository
	sessions  *SessionRegistry
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(repo ports.AuthRepository, sessions *SessionRegistry, jwtSecret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{repo: repo, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Login verifies the claimed identity against the stored secret and issues a
// session token. A lookup miss and a password mismatch are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, name, password string) (string, *domain.Operator, error) {
	if name == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	operator, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrOperatorNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(operator)
	if err != nil {
		return "", nil, err
	}

	return token, operator, nil
}

// Logout revokes the session unconditionally; revoking an unknown or already
// revoked token id is not an error.
func (s *AuthService) Logout(_ context.Context, tokenID string) error {
	s.sessions.Revoke(tokenID, time.Now().Add(s.tokenTTL))
	return nil
}

func (s *AuthService) generateToken(operator *domain.Operator) (string, error) {
	claims := jwt.MapClaims{
		"name": operator.Name,
		"role": operator.Role,
		"jti":  uuid.NewString(),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
