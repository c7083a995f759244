package seed

import (
	"context"
	"fmt"

	"sneakerstore/internal/domain"
	productrepo "sneakerstore/internal/repository/product"
)

var products = []domain.Product{
	{
		Name:        "Nike Air Max Pulse",
		Description: "Experience the evolution of comfort with the Nike Air Max Pulse. Premium cushioning meets sleek design.",
		PriceCents:  1_399_500,
		Category:    "Running",
		ImageURL:    "/assets/airmaxpulse.jpg",
		Stock:       50,
	},
	{
		Name:        "Nike Air Max 270",
		Description: "Step into comfort with the Nike Air Max 270. Featuring our tallest Air unit yet for all-day comfort.",
		PriceCents:  1_279_500,
		Category:    "Running",
		ImageURL:    "/assets/airmax270.jpg",
		Stock:       45,
	},
	{
		Name:        "Nike React Infinity",
		Description: "Keep running with the Nike React Infinity. Designed to help reduce injury with soft, responsive cushioning.",
		PriceCents:  1_499_500,
		Category:    "Running",
		ImageURL:    "/assets/nike-infinity.jpg",
		Stock:       40,
	},
	{
		Name:        "Nike ZoomX Vaporfly",
		Description: "Go the distance with the Nike ZoomX Vaporfly. Built for speed with responsive foam and carbon fiber plate.",
		PriceCents:  1_899_500,
		Category:    "Running",
		ImageURL:    "/assets/vaporfly.jpg",
		Stock:       30,
	},
	{
		Name:        "Nike Basketball Pro",
		Description: "Dominate the court with Nike Basketball Pro. Superior grip and responsive cushioning for peak performance.",
		PriceCents:  1_199_500,
		Category:    "Basketball",
		ImageURL:    "/assets/basketball.jpg",
		Stock:       35,
	},
	{
		Name:        "Nike Football Elite",
		Description: "Own the field with Nike Football Elite. Precision-engineered studs and lightweight design for ultimate control.",
		PriceCents:  1_099_500,
		Category:    "Football",
		ImageURL:    "/assets/nike-football.jpg",
		Stock:       40,
	},
}

// Apply inserts the demo sneaker catalog. Idempotent: products are
// upserted by name.
func Apply(ctx context.Context, repo productrepo.Repository) (int, error) {
	for _, p := range products {
		if _, err := repo.Upsert(ctx, p); err != nil {
			return 0, fmt.Errorf("upsert product %q: %w", p.Name, err)
		}
	}
	return len(products), nil
}
