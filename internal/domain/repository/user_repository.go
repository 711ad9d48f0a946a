package repository

import (
	"context"

	"github.com/empdesk/employee-api/internal/domain/entity"
)

// UserRepository is the persistence boundary for credential records.
// The auth core only ever creates users and reads them by username; records
// are never updated or deleted here.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
