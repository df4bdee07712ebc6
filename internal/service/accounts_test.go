package service

import (
	"context"
	"errors"
	"testing"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

const testSigningKey = "test-signing-key"

// mockUserRepo is a lightweight in-test mock for repository.Users.
type mockUserRepo struct {
	CreateFn  func(u models.User) error
	GetByIDFn func(id string) (*models.User, error)

	createCalls []models.User
	getCalls    []string
}

func (m *mockUserRepo) Create(ctx context.Context, u models.User) error {
	m.createCalls = append(m.createCalls, u)
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	m.getCalls = append(m.getCalls, id)
	return m.GetByIDFn(id)
}

func TestAccountService_Register_PersistsUserWithIssuedToken(t *testing.T) {
	mock := &mockUserRepo{}
	svc := NewAccountService(mock, testSigningKey)

	in := RegisterInput{
		Name:    "alice",
		Email:   "alice@example.com",
		Address: "1 Main St",
		Weight:  62.5,
		Height:  170,
	}
	user, token, err := svc.Register(context.Background(), in)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if user.ID == "" {
		t.Fatalf("expected a generated user id")
	}
	if token == "" || user.SessionToken != token {
		t.Fatalf("expected returned token to be persisted on the user, got token=%q user=%+v", token, user)
	}
	if user.Name != in.Name || user.Email != in.Email || user.Address != in.Address ||
		user.Weight != in.Weight || user.Height != in.Height {
		t.Fatalf("registration fields not carried over: %+v", user)
	}

	if len(mock.createCalls) != 1 {
		t.Fatalf("expected 1 Create call, got %d", len(mock.createCalls))
	}
	if mock.createCalls[0].SessionToken != token {
		t.Fatalf("stored token differs from issued token")
	}

	// The issued credential must resolve back to exactly this user id.
	claims, err := parseSessionToken(testSigningKey, token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token bound to %q, want %q", claims.UserID, user.ID)
	}
}

func TestAccountService_Register_TokensAreUniquePerUser(t *testing.T) {
	mock := &mockUserRepo{}
	svc := NewAccountService(mock, testSigningKey)

	_, tok1, err := svc.Register(context.Background(), RegisterInput{Name: "a", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, tok2, err := svc.Register(context.Background(), RegisterInput{Name: "b", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("second Register: %v", err)
	}
	if tok1 == tok2 {
		t.Fatalf("expected distinct credentials for distinct users")
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(u models.User) error {
			return repository.ErrEmailExists
		},
	}
	svc := NewAccountService(mock, testSigningKey)

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "x", Email: "dup@example.com"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAccountService_Register_RepoError(t *testing.T) {
	mock := &mockUserRepo{
		CreateFn: func(u models.User) error {
			return errors.New("db down")
		},
	}
	svc := NewAccountService(mock, testSigningKey)

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "x", Email: "x@example.com"})
	if err == nil {
		t.Fatalf("expected repo error, got nil")
	}
	if errors.Is(err, ErrEmailTaken) {
		t.Fatalf("generic repo error must not surface as ErrEmailTaken")
	}
}
