package user

import (
	"context"

	"sneakerstore/internal/domain"
)

// Repository persists and fetches users. Email is unique.
type Repository interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
