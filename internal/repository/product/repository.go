package product

import (
	"context"

	"sneakerstore/internal/domain"
)

// ListFilter narrows List results. Zero values mean no filtering; Limit
// defaults to 100 like the HTTP layer.
type ListFilter struct {
	Category string
	Skip     int
	Limit    int
}

// UpdateInput carries partial product updates; nil fields are left
// untouched.
type UpdateInput struct {
	Name        *string
	Description *string
	PriceCents  *int64
	Category    *string
	ImageURL    *string
	Stock       *int
}

// Repository persists and fetches catalog products.
type Repository interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, f ListFilter) ([]domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
