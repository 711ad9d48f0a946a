package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/empdesk/employee-api/internal/domain/entity"
	"github.com/empdesk/employee-api/internal/domain/repository"
	"github.com/empdesk/employee-api/pkg/helpers"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password. Collapsing the two is an anti-enumeration control: a login
// attempt must never reveal whether a username exists.
var ErrInvalidCredentials = errors.New("invalid credentials")

// PasswordHasher is the one-way adaptive hash capability the service is
// constructed with.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// TokenIssuer mints signed session tokens over {sub, username, role}.
type TokenIssuer interface {
	Sign(userID, username, role string) (string, error)
}

// AuthService orchestrates login, registration and logout over its three
// injected collaborators. It holds no mutable state of its own.
type AuthService struct {
	users  repository.UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
	logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Login verifies the credentials and mints a session token. Unknown user
// and wrong password return the same error; a missing signing secret
// surfaces as helpers.ErrMissingSecret before any token is issued.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || u == nil {
		if err != nil && !errors.Is(err, repository.ErrNotFound) && s.logger != nil {
			s.logger.WithError(err).Error("user lookup failed")
		}
		return nil, "", ErrInvalidCredentials
	}
	if !s.hasher.Verify(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	role := u.Role
	if role == "" {
		role = "user"
	}
	token, err := s.tokens.Sign(u.ID, u.Username, role)
	if err != nil {
		if errors.Is(err, helpers.ErrMissingSecret) {
			if s.logger != nil {
				s.logger.Error("JWT_SECRET is missing")
			}
		} else if s.logger != nil {
			s.logger.WithError(err).WithField("user_id", u.ID).Error("sign token failed")
		}
		return nil, "", err
	}
	return u, token, nil
}

// Register hashes the password and stores a new user. The plaintext is
// never persisted or logged. A uniqueness conflict comes back as
// repository.ErrDuplicateUsername.
func (s *AuthService) Register(ctx context.Context, username, password string) (*entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		if s.logger != nil {
			s.logger.WithError(err).Error("password hash failed")
		}
		return nil, err
	}
	u := &entity.User{Username: username, PasswordHash: hash}
	if err := s.users.Create(ctx, u); err != nil {
		if !errors.Is(err, repository.ErrDuplicateUsername) && s.logger != nil {
			s.logger.WithError(err).Error("user insert failed")
		}
		return nil, err
	}
	return u, nil
}
