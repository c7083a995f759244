package product

import (
	"context"
	"errors"
	"io"
	"log"

	"sneakerstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

const productColumns = `id::text, name, COALESCE(description, ''), price_cents, category, COALESCE(image_url, ''), stock, created_at`

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, category, image_url, stock)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6)
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Category, p.ImageURL, p.Stock))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE id = $1
`
	return r.scanProduct(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) List(ctx context.Context, f ListFilter) ([]domain.Product, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	skip := f.Skip
	if skip < 0 {
		skip = 0
	}
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE ($1 = '' OR category = $1)
ORDER BY created_at ASC
OFFSET $2 LIMIT $3
`
	rows, err := r.pool.Query(ctx, q, f.Category, skip, limit)
	if err != nil {
		r.logger.Printf("product repo: list category=%q error=%v", f.Category, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) Search(ctx context.Context, query string) ([]domain.Product, error) {
	const q = `
SELECT ` + productColumns + `
FROM products
WHERE name ILIKE '%' || $1 || '%'
   OR description ILIKE '%' || $1 || '%'
   OR category ILIKE '%' || $1 || '%'
ORDER BY created_at ASC
LIMIT 100
`
	rows, err := r.pool.Query(ctx, q, query)
	if err != nil {
		r.logger.Printf("product repo: search query=%q error=%v", query, err)
		return nil, err
	}
	return r.collect(rows)
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = COALESCE($2, name),
    description = COALESCE($3, description),
    price_cents = COALESCE($4, price_cents),
    category = COALESCE($5, category),
    image_url = COALESCE($6, image_url),
    stock = COALESCE($7, stock)
WHERE id = $1
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, id, in.Name, in.Description, in.PriceCents, in.Category, in.ImageURL, in.Stock))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("product repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert is keyed by product name so seeding and imports stay idempotent.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (name, description, price_cents, category, image_url, stock)
VALUES ($1, NULLIF($2, ''), $3, $4, NULLIF($5, ''), $6)
ON CONFLICT (name) DO UPDATE SET
    description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    category = EXCLUDED.category,
    image_url = EXCLUDED.image_url,
    stock = EXCLUDED.stock
RETURNING ` + productColumns
	return r.scanProduct(r.pool.QueryRow(ctx, q, p.Name, p.Description, p.PriceCents, p.Category, p.ImageURL, p.Stock))
}

func (r *postgresRepo) collect(rows pgx.Rows) ([]domain.Product, error) {
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.ImageURL, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("product repo: rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceCents, &p.Category, &p.ImageURL, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("product repo: scan error=%v", err)
		return nil, err
	}
	return &p, nil
}
