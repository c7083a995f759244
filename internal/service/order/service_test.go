package order

import (
	"context"
	"errors"
	"testing"

	"sneakerstore/internal/domain"
)

const (
	orderID    = "0b5e2f1a-93cd-4a7e-8e0f-2d6b1c9a7e44"
	productID  = "7f8c5a1e-61fb-4f3a-9f6b-9a4e4d2c8b10"
	productID2 = "3c1d9e2b-84aa-4a01-b7c3-5f0e6d2a9c77"
)

type stubOrderRepo struct {
	created    *domain.Order
	createErr  error
	lastCreate domain.Order
	order      *domain.Order
	orders     []domain.Order
	err        error
	lastStatus string
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastCreate = o
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	o.ID = orderID
	return &o, nil
}

func (s *stubOrderRepo) GetForUser(_ context.Context, _, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderRepo) UpdateStatus(_ context.Context, _, status string) (*domain.Order, error) {
	s.lastStatus = status
	return s.order, s.err
}

type stubCartClearer struct {
	calls int
	err   error
}

func (s *stubCartClearer) Clear(_ context.Context, _ string) (*domain.Cart, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Cart{}, nil
}

func TestCreateComputesTotalOnce(t *testing.T) {
	repo := &stubOrderRepo{}
	carts := &stubCartClearer{}
	svc := New(repo, carts, nil)

	got, err := svc.Create(context.Background(), "u1", CreateInput{
		Lines: []LineInput{
			{ProductID: productID, ProductName: "Nike Air Max Pulse", Quantity: 2, UnitPriceCents: 1_399_500},
			{ProductID: productID2, ProductName: "Nike Football Elite", Quantity: 1, UnitPriceCents: 1_099_500},
		},
		ShippingAddress: "221B Baker Street",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalCents != 2*1_399_500+1_099_500 {
		t.Fatalf("unexpected total: %d", got.TotalCents)
	}
	if got.Status != domain.OrderStatusPending {
		t.Fatalf("new orders must start pending, got %q", got.Status)
	}
	if len(repo.lastCreate.Lines) != 2 {
		t.Fatalf("unexpected lines: %+v", repo.lastCreate.Lines)
	}
	if carts.calls != 1 {
		t.Fatalf("cart must be cleared after checkout, calls=%d", carts.calls)
	}
}

func TestCreateEmptyLines(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartClearer{}, nil)
	_, err := svc.Create(context.Background(), "u1", CreateInput{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestCreateLineValidation(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartClearer{}, nil)

	bad := []CreateInput{
		{Lines: []LineInput{{ProductID: "nope", Quantity: 1, UnitPriceCents: 100}}},
		{Lines: []LineInput{{ProductID: productID, Quantity: 0, UnitPriceCents: 100}}},
		{Lines: []LineInput{{ProductID: productID, Quantity: 1, UnitPriceCents: -1}}},
	}
	for i, in := range bad {
		if _, err := svc.Create(context.Background(), "u1", in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("case %d: expected invalid input, got %v", i, err)
		}
	}
}

func TestCreateCartClearFailureStillReturnsOrder(t *testing.T) {
	repo := &stubOrderRepo{}
	carts := &stubCartClearer{err: errors.New("db down")}
	svc := New(repo, carts, nil)

	got, err := svc.Create(context.Background(), "u1", CreateInput{
		Lines: []LineInput{{ProductID: productID, ProductName: "Nike Air Max Pulse", Quantity: 1, UnitPriceCents: 1_399_500}},
	})
	if err != nil {
		t.Fatalf("order creation must survive a failed cart clear: %v", err)
	}
	if got.ID != orderID {
		t.Fatalf("unexpected order: %+v", got)
	}
	if carts.calls != 1 {
		t.Fatal("cart clear must still be attempted")
	}
}

func TestCreateRepoErrorSkipsCartClear(t *testing.T) {
	repo := &stubOrderRepo{createErr: errors.New("insert failed")}
	carts := &stubCartClearer{}
	svc := New(repo, carts, nil)

	_, err := svc.Create(context.Background(), "u1", CreateInput{
		Lines: []LineInput{{ProductID: productID, Quantity: 1, UnitPriceCents: 100}},
	})
	if err == nil {
		t.Fatal("expected repo error")
	}
	if carts.calls != 0 {
		t.Fatal("cart must not be cleared when the order was not persisted")
	}
}

func TestGetInvalidID(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubCartClearer{}, nil)
	_, err := svc.Get(context.Background(), "u1", "bogus")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSetStatusValidation(t *testing.T) {
	repo := &stubOrderRepo{order: &domain.Order{ID: orderID, Status: domain.OrderStatusShipped}}
	svc := New(repo, &stubCartClearer{}, nil)

	_, err := svc.SetStatus(context.Background(), "bogus", domain.OrderStatusShipped)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad id, got %v", err)
	}

	_, err = svc.SetStatus(context.Background(), orderID, "refunded")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}

	got, err := svc.SetStatus(context.Background(), orderID, domain.OrderStatusShipped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.OrderStatusShipped {
		t.Fatalf("unexpected status: %q", got.Status)
	}
	if repo.lastStatus != domain.OrderStatusShipped {
		t.Fatalf("repo called with %q", repo.lastStatus)
	}
}

func TestListPassesThrough(t *testing.T) {
	orders := []domain.Order{{ID: orderID}}
	svc := New(&stubOrderRepo{orders: orders}, &stubCartClearer{}, nil)
	got, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != orderID {
		t.Fatalf("unexpected orders: %+v", got)
	}
}
