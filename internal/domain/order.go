package domain

import "time"

// Order statuses. Creation always starts at pending; delivered and
// cancelled are terminal.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Order is an immutable snapshot of purchased lines. Only Status may
// change after creation; TotalCents is computed once and never again.
type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"userId"`
	Lines           []OrderLine `json:"items"`
	TotalCents      int64       `json:"totalCents"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// OrderLine freezes product name and price at purchase time so later
// catalog edits do not affect past orders.
type OrderLine struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
}

var orderStatusRank = map[string]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s string) bool {
	if s == OrderStatusCancelled {
		return true
	}
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionOrderStatus reports whether an order may move from
// current to next. Moves are monotonic: terminal states are frozen,
// backwards moves are rejected, and cancellation is only allowed while
// the order is still pending or processing. Forward skips (for example
// pending straight to shipped) are permitted.
func CanTransitionOrderStatus(current, next string) bool {
	if !ValidOrderStatus(current) || !ValidOrderStatus(next) {
		return false
	}
	if current == OrderStatusDelivered || current == OrderStatusCancelled {
		return current == next
	}
	if next == OrderStatusCancelled {
		return current == OrderStatusPending || current == OrderStatusProcessing
	}
	return orderStatusRank[next] >= orderStatusRank[current]
}
