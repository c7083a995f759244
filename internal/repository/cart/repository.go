package cart

import (
	"context"

	"sneakerstore/internal/domain"
)

// Repository persists the single cart of each user. Implementations
// must keep mutations safe under concurrent requests for the same user:
// line merges happen as atomic in-database increments and the cart
// total is recomputed from the lines inside the same transaction, so
// two concurrent additions never overwrite each other.
type Repository interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}
