package user

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"sneakerstore/internal/auth"
	"sneakerstore/internal/domain"
)

type stubRepo struct {
	users     map[string]*domain.User
	createErr error
	lastInput domain.User
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: map[string]*domain.User{}}
}

func (s *stubRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, exists := s.users[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	s.lastInput = u
	u.ID = "u-" + u.Email
	s.users[u.Email] = &u
	return &u, nil
}

func (s *stubRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func newTestService(repo *stubRepo) *Service {
	hasher := auth.NewPasswordHasher(0)
	tokens := auth.NewTokenCodec("test-secret", 30*time.Minute)
	return New(repo, hasher, tokens)
}

func TestSignupNormalizesEmailAndHashes(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	u, err := svc.Signup(context.Background(), SignupInput{
		Email:    "  Alice@Example.COM ",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if repo.lastInput.PasswordHash == "supersecret" || repo.lastInput.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if !strings.Contains(repo.lastInput.PasswordHash, ":") {
		t.Fatalf("unexpected credential encoding: %q", repo.lastInput.PasswordHash)
	}
	if u.Country != "India" {
		t.Fatalf("expected default country, got %q", u.Country)
	}
}

func TestSignupValidation(t *testing.T) {
	svc := newTestService(newStubRepo())

	_, err := svc.Signup(context.Background(), SignupInput{Email: "not-an-email", Password: "supersecret"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for bad email, got %v", err)
	}

	_, err = svc.Signup(context.Background(), SignupInput{Email: "a@b.com", Password: "short"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input for short password, got %v", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	in := SignupInput{Email: "dup@example.com", Password: "supersecret"}
	if _, err := svc.Signup(context.Background(), in); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	_, err := svc.Signup(context.Background(), in)
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "bob@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	u, token, err := svc.Login(context.Background(), "bob@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if u.Email != "bob@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}

	resolved, err := svc.ResolveToken(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.ID != u.ID {
		t.Fatalf("resolved wrong user: %+v", resolved)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "carl@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, _, err := svc.Login(context.Background(), "carl@example.com", "wrongwrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	svc := newTestService(newStubRepo())
	_, _, err := svc.Login(context.Background(), "ghost@example.com", "supersecret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}

func TestResolveTokenInvalid(t *testing.T) {
	svc := newTestService(newStubRepo())
	_, err := svc.ResolveToken(context.Background(), "not.a.token")
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token, got %v", err)
	}
}

func TestResolveTokenDeletedUser(t *testing.T) {
	repo := newStubRepo()
	svc := newTestService(repo)

	if _, err := svc.Signup(context.Background(), SignupInput{Email: "gone@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	_, token, err := svc.Login(context.Background(), "gone@example.com", "supersecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	delete(repo.users, "gone@example.com")

	_, err = svc.ResolveToken(context.Background(), token)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for deleted user, got %v", err)
	}
}

func TestTokenTTLSeconds(t *testing.T) {
	svc := newTestService(newStubRepo())
	if got := svc.TokenTTLSeconds(); got != 1800 {
		t.Fatalf("expected 1800 seconds, got %d", got)
	}
}
