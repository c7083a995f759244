package cart

import (
	"context"
	"fmt"

	"sneakerstore/internal/domain"

	"github.com/google/uuid"
)

type cartRepo interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Service maintains the single cart of each user.
type Service struct {
	repo     cartRepo
	products productRepo
}

func New(repo cartRepo, products productRepo) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

// AddItem merges quantity of the given product into the cart. The unit
// price is taken from the catalog, never from the caller, so clients
// cannot tamper with pricing. Nothing is mutated when the product id is
// malformed or unknown.
func (s *Service) AddItem(ctx context.Context, userID, productID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	if _, err := uuid.Parse(productID); err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.repo.AddItem(ctx, userID, *product, quantity)
}

// RemoveItem deletes the product's line if present; removing an absent
// line is a no-op, not an error.
func (s *Service) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	if _, err := uuid.Parse(productID); err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	return s.repo.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart and zeroes its total.
func (s *Service) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	return s.repo.Clear(ctx, userID)
}
