package domain

import "time"

// Cart is the single mutable cart of a user. TotalCents always equals
// the sum of line totals; repositories recompute it on every mutation.
type Cart struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Lines      []CartLine `json:"items"`
	TotalCents int64      `json:"totalCents"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CartLine holds one product entry. A cart has at most one line per
// product; adding an existing product merges quantities.
type CartLine struct {
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}
