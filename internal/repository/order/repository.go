package order

import (
	"context"

	"sneakerstore/internal/domain"
)

// Repository persists immutable order snapshots. Only the status column
// is ever updated after insert.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetForUser(ctx context.Context, userID, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	// UpdateStatus applies the monotonic transition rules atomically and
	// returns the refreshed order. domain.ErrNotFound if the order does
	// not exist, domain.ErrInvalidInput if the transition is not allowed.
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
