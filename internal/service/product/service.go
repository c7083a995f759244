package product

import (
	"context"
	"fmt"
	"strings"

	"sneakerstore/internal/domain"
	productrepo "sneakerstore/internal/repository/product"

	"github.com/google/uuid"
)

// Service wraps catalog reads and the authenticated catalog mutations.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput mirrors the product creation payload.
type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Stock       int    `json:"stock"`
}

// UpdateInput carries partial updates; nil fields are untouched.
type UpdateInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"priceCents"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Stock       *int    `json:"stock"`
}

func (s *Service) List(ctx context.Context, category string, skip, limit int) ([]domain.Product, error) {
	return s.repo.List(ctx, productrepo.ListFilter{Category: category, Skip: skip, Limit: limit})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Product, error) {
	return s.repo.Search(ctx, query)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Product, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.Category) == "" {
		return nil, fmt.Errorf("%w: category required", domain.ErrInvalidInput)
	}
	if in.PriceCents < 0 || in.Stock < 0 {
		return nil, fmt.Errorf("%w: price and stock must not be negative", domain.ErrInvalidInput)
	}
	return s.repo.Create(ctx, domain.Product{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
	})
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	if in.Name == nil && in.Description == nil && in.PriceCents == nil && in.Category == nil && in.ImageURL == nil && in.Stock == nil {
		return nil, fmt.Errorf("%w: no data to update", domain.ErrInvalidInput)
	}
	return s.repo.Update(ctx, id, productrepo.UpdateInput{
		Name:        in.Name,
		Description: in.Description,
		PriceCents:  in.PriceCents,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Stock:       in.Stock,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid product ID", domain.ErrInvalidInput)
	}
	return s.repo.Delete(ctx, id)
}
