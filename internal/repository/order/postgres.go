package order

import (
	"context"
	"errors"
	"io"
	"log"

	"sneakerstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var id string
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (user_id, total_cents, status, shipping_address)
VALUES ($1, $2, $3, $4)
RETURNING id::text
`, o.UserID, o.TotalCents, o.Status, o.ShippingAddress).Scan(&id); err != nil {
		return nil, err
	}

	for i, line := range o.Lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, position, product_id, product_name, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`, id, i, line.ProductID, line.ProductName, line.Quantity, line.UnitPriceCents); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.fetch(ctx, id)
}

func (r *postgresRepo) GetForUser(ctx context.Context, userID, id string) (*domain.Order, error) {
	var found string
	err := r.pool.QueryRow(ctx, `
SELECT id::text FROM orders WHERE id = $1 AND user_id = $2
`, id, userID).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return r.fetch(ctx, found)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id::text, user_id::text, total_cents, status, COALESCE(shipping_address, ''), created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 100
`, userID)
	if err != nil {
		r.logger.Printf("order repo: list user_id=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		lines, err := r.fetchLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var current string
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if !domain.CanTransitionOrderStatus(current, status) {
		return nil, domain.ErrInvalidInput
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.fetch(ctx, id)
}

func (r *postgresRepo) fetch(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, status, COALESCE(shipping_address, ''), created_at
FROM orders
WHERE id = $1
`, id).Scan(&o.ID, &o.UserID, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	lines, err := r.fetchLines(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderID string) ([]domain.OrderLine, error) {
	rows, err := r.pool.Query(ctx, `
SELECT product_id::text, product_name, quantity, unit_price_cents
FROM order_lines
WHERE order_id = $1
ORDER BY position ASC
`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.Quantity, &line.UnitPriceCents); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
