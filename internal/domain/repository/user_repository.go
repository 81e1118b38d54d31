package repository

import (
	"context"

	"github.com/smartpark/sims-api/internal/domain/entity"
)

// UserRepository is the persistence port for operator accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}
