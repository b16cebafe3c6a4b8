package user

import (
	"context"

	"shopadmin/internal/domain"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
}
