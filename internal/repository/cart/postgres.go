package cart

import (
	"context"
	"errors"

	"sneakerstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

// ensureCart creates the user's cart row exactly once. The unique index
// on user_id makes concurrent first-access idempotent: both inserts
// race, one wins, both selects return the same row.
func ensureCart(ctx context.Context, q querier, userID string) (string, error) {
	if _, err := q.Exec(ctx, `
INSERT INTO carts (user_id, total_cents)
VALUES ($1, 0)
ON CONFLICT (user_id) DO NOTHING
`, userID); err != nil {
		return "", err
	}
	var cartID string
	err := q.QueryRow(ctx, `SELECT id::text FROM carts WHERE user_id = $1`, userID).Scan(&cartID)
	return cartID, err
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *postgresRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, error) {
	if _, err := ensureCart(ctx, r.pool, userID); err != nil {
		return nil, err
	}
	return r.fetchCart(ctx, userID)
}

func (r *postgresRepo) AddItem(ctx context.Context, userID string, product domain.Product, quantity int) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	// Atomic merge-on-add: the increment happens in the database, so a
	// concurrent add of the same product cannot be lost.
	if _, err := tx.Exec(ctx, `
INSERT INTO cart_lines (cart_id, product_id, quantity, unit_price_cents)
VALUES ($1, $2, $3, $4)
ON CONFLICT (cart_id, product_id) DO UPDATE
SET quantity = cart_lines.quantity + EXCLUDED.quantity
`, cartID, product.ID, quantity, product.PriceCents); err != nil {
		return nil, err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.fetchCart(ctx, userID)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, userID, productID string) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	// Removing an absent line is a no-op, not an error.
	if _, err := tx.Exec(ctx, `
DELETE FROM cart_lines
WHERE cart_id = $1 AND product_id = $2
`, cartID, productID); err != nil {
		return nil, err
	}

	if err := updateCartTotal(ctx, tx, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.fetchCart(ctx, userID)
}

func (r *postgresRepo) Clear(ctx context.Context, userID string) (*domain.Cart, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cartID, err := ensureCart(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_lines WHERE cart_id = $1`, cartID); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(ctx, `
UPDATE carts SET total_cents = 0, updated_at = now() WHERE id = $1
`, cartID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.fetchCart(ctx, userID)
}

func (r *postgresRepo) fetchCart(ctx context.Context, userID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `
SELECT id::text, user_id::text, total_cents, updated_at
FROM carts
WHERE user_id = $1
`, userID).Scan(&cart.ID, &cart.UserID, &cart.TotalCents, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT product_id::text, quantity, unit_price_cents
FROM cart_lines
WHERE cart_id = $1
ORDER BY created_at ASC
`, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.CartLine
		if err := rows.Scan(&line.ProductID, &line.Quantity, &line.UnitPriceCents); err != nil {
			return nil, err
		}
		cart.Lines = append(cart.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

// updateCartTotal recomputes the total as the exact sum over lines; no
// incremental drift is possible.
func updateCartTotal(ctx context.Context, tx pgx.Tx, cartID string) error {
	_, err := tx.Exec(ctx, `
UPDATE carts
SET total_cents = COALESCE((
	SELECT SUM(quantity * unit_price_cents)
	FROM cart_lines
	WHERE cart_id = $1
), 0),
    updated_at = now()
WHERE id = $1
`, cartID)
	return err
}
