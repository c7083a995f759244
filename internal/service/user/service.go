package user

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"sneakerstore/internal/auth"
	"sneakerstore/internal/domain"
	userrepo "sneakerstore/internal/repository/user"

	"golang.org/x/sync/semaphore"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the presented token could not be
	// validated (expired, tampered, or malformed).
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles signup, login, and token-to-user resolution.
//
// Password hashing is CPU-bound, so the service bounds concurrent
// derivations with a semaphore sized to the CPU count; a burst of
// signups queues instead of starving unrelated request handling.
type Service struct {
	repo        userrepo.Repository
	hasher      *auth.PasswordHasher
	tokens      *auth.TokenCodec
	hashSem     *semaphore.Weighted
	passwordMin int
}

func New(repo userrepo.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenCodec) *Service {
	return &Service{
		repo:        repo,
		hasher:      hasher,
		tokens:      tokens,
		hashSem:     semaphore.NewWeighted(int64(runtime.NumCPU())),
		passwordMin: 8,
	}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Email                  string `json:"email"`
	Password               string `json:"password"`
	FirstName              string `json:"firstName"`
	LastName               string `json:"lastName"`
	DateOfBirth            string `json:"dateOfBirth"`
	Country                string `json:"country"`
	Gender                 string `json:"gender"`
	NewsletterSubscription bool   `json:"newsletterSubscription"`
}

// Signup registers a new user. A duplicate email surfaces as
// domain.ErrAlreadyExists.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: email required", domain.ErrInvalidInput)
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, s.passwordMin)
	}

	hashed, err := s.hashPassword(ctx, password)
	if err != nil {
		return nil, err
	}

	country := in.Country
	if country == "" {
		country = "India"
	}

	return s.repo.Create(ctx, domain.User{
		Email:                  email,
		PasswordHash:           hashed,
		FirstName:              in.FirstName,
		LastName:               in.LastName,
		DateOfBirth:            in.DateOfBirth,
		Country:                country,
		Gender:                 in.Gender,
		NewsletterSubscription: in.NewsletterSubscription,
	})
}

// Login validates credentials and returns the user plus an issued
// bearer token. Unknown email and wrong password are indistinguishable.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	ok, err := s.verifyPassword(ctx, strings.TrimSpace(password), u.PasswordHash)
	if err != nil {
		return nil, "", err
	}
	if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// ResolveToken maps a bearer token to the persisted user. An invalid
// token yields ErrInvalidToken; a valid token whose subject no longer
// exists yields domain.ErrNotFound — the two cases warrant different
// responses upstream.
func (s *Service) ResolveToken(ctx context.Context, token string) (*domain.User, error) {
	subject, ok := s.tokens.Verify(token)
	if !ok {
		return nil, ErrInvalidToken
	}
	return s.repo.GetByEmail(ctx, subject)
}

// TokenTTLSeconds exposes the bearer token lifetime in seconds.
func (s *Service) TokenTTLSeconds() int {
	return int(s.tokens.TTL().Seconds())
}

func (s *Service) hashPassword(ctx context.Context, password string) (string, error) {
	if err := s.hashSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer s.hashSem.Release(1)
	return s.hasher.Hash(password)
}

func (s *Service) verifyPassword(ctx context.Context, password, encoded string) (bool, error) {
	if err := s.hashSem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer s.hashSem.Release(1)
	return s.hasher.Verify(password, encoded), nil
}
