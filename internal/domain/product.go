package domain

import "time"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
