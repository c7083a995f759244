package user

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"

	"sneakerstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (email, password_hash, first_name, last_name, date_of_birth, country, gender, newsletter_subscription)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id::text, email, password_hash, first_name, last_name, date_of_birth, country, gender, newsletter_subscription, created_at
`
	return r.scanUser(r.pool.QueryRow(
		ctx,
		q,
		strings.ToLower(u.Email),
		u.PasswordHash,
		u.FirstName,
		u.LastName,
		u.DateOfBirth,
		u.Country,
		u.Gender,
		u.NewsletterSubscription,
	))
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `
SELECT id::text, email, password_hash, first_name, last_name, date_of_birth, country, gender, newsletter_subscription, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id::text, email, password_hash, first_name, last_name, date_of_birth, country, gender, newsletter_subscription, created_at
FROM users
WHERE id = $1
LIMIT 1
`
	return r.scanUser(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Country,
		&u.Gender,
		&u.NewsletterSubscription,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("user repo: scan error=%v", err)
		return nil, err
	}
	return &u, nil
}
