package order

import (
	"context"
	"fmt"
	"io"
	"log"

	"sneakerstore/internal/domain"

	"github.com/google/uuid"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	GetForUser(ctx context.Context, userID, id string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

type cartClearer interface {
	Clear(ctx context.Context, userID string) (*domain.Cart, error)
}

// Service finalizes carts into immutable orders.
type Service struct {
	repo   orderRepo
	carts  cartClearer
	logger *log.Logger
}

func New(repo orderRepo, carts cartClearer, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, carts: carts, logger: logger}
}

// LineInput is one product entry of an order request. Prices are
// captured as given; callers source them from the current cart.
type LineInput struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

// CreateInput mirrors the order creation payload.
type CreateInput struct {
	Lines           []LineInput `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
}

// Create persists a pending order whose total is computed once from the
// supplied lines, then clears the user's cart. The clear is a separate
// best-effort step: if it fails the order still stands and the stale
// cart is cleaned up by the next clear or checkout (the clear itself is
// idempotent).
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*domain.Order, error) {
	if len(in.Lines) == 0 {
		return nil, fmt.Errorf("%w: items required", domain.ErrInvalidInput)
	}

	lines := make([]domain.OrderLine, 0, len(in.Lines))
	var total int64
	for _, l := range in.Lines {
		if _, err := uuid.Parse(l.ProductID); err != nil {
			return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
		}
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
		}
		if l.UnitPriceCents < 0 {
			return nil, fmt.Errorf("%w: negative price", domain.ErrInvalidInput)
		}
		lines = append(lines, domain.OrderLine{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		})
		total += l.UnitPriceCents * int64(l.Quantity)
	}

	created, err := s.repo.Create(ctx, domain.Order{
		UserID:          userID,
		Lines:           lines,
		TotalCents:      total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: in.ShippingAddress,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Printf("order service: clear cart after order id=%s user_id=%s err=%v", created.ID, userID, err)
	}
	return created, nil
}

// Get returns the order if it exists and belongs to the user.
func (s *Service) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, fmt.Errorf("%w: invalid order ID", domain.ErrInvalidInput)
	}
	return s.repo.GetForUser(ctx, userID, orderID)
}

// List returns the user's orders, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus moves an order to a new status. The value must be one of
// the five known statuses and the move must be permitted by the
// monotonic transition rules.
func (s *Service) SetStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, fmt.Errorf("%w: invalid order ID", domain.ErrInvalidInput)
	}
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidInput, status)
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}
