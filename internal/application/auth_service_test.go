package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empdesk/employee-api/internal/domain/entity"
	"github.com/empdesk/employee-api/internal/domain/repository"
	"github.com/empdesk/employee-api/pkg/helpers"
)

type mockUserRepo struct {
	getByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	createFn        func(ctx context.Context, u *entity.User) error
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return errors.New("not implemented")
}

func storedUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{ID: "u-1", Username: "alice", PasswordHash: hash, Role: "admin"}
}

func TestLoginUnknownUser(t *testing.T) {
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAuthService(repo, helpers.BcryptHasher{}, helpers.NewJWTManager("s", "15m"), nil)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	u := storedUser(t, "right-password")
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(repo, helpers.BcryptHasher{}, helpers.NewJWTManager("s", "15m"), nil)

	// same sentinel as the unknown-user case, so responses cannot differ
	_, _, err := svc.Login(context.Background(), "alice", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginSuccess(t *testing.T) {
	u := storedUser(t, "right-password")
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return u, nil
		},
	}
	jwt := helpers.NewJWTManager("test-secret", "15m")
	svc := NewAuthService(repo, helpers.BcryptHasher{}, jwt, nil)

	got, token, err := svc.Login(context.Background(), "alice", "right-password")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	claims, err := jwt.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginDefaultsBlankRole(t *testing.T) {
	u := storedUser(t, "pw")
	u.Role = ""
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return u, nil
		},
	}
	jwt := helpers.NewJWTManager("test-secret", "15m")
	svc := NewAuthService(repo, helpers.BcryptHasher{}, jwt, nil)

	_, token, err := svc.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	claims, err := jwt.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user", claims.Role)
}

func TestLoginMissingSecret(t *testing.T) {
	u := storedUser(t, "pw")
	repo := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(repo, helpers.BcryptHasher{}, helpers.NewJWTManager("", "15m"), nil)

	_, _, err := svc.Login(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, helpers.ErrMissingSecret)
}

func TestRegisterHashesPassword(t *testing.T) {
	var stored *entity.User
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u *entity.User) error {
			u.ID = "u-2"
			u.Role = "user"
			stored = u
			return nil
		},
	}
	svc := NewAuthService(repo, helpers.BcryptHasher{}, helpers.NewJWTManager("s", "15m"), nil)

	u, err := svc.Register(context.Background(), "bob", "plaintext-pw")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "bob", u.Username)
	assert.NotEqual(t, "plaintext-pw", stored.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(stored.PasswordHash, "plaintext-pw"))
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u *entity.User) error {
			return repository.ErrDuplicateUsername
		},
	}
	svc := NewAuthService(repo, helpers.BcryptHasher{}, helpers.NewJWTManager("s", "15m"), nil)

	_, err := svc.Register(context.Background(), "bob", "pw")
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)
}
