package service

import (
	"context"
	"errors"
	"fmt"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"

	"github.com/google/uuid"
)

// Domain errors surfaced to the HTTP layer.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrMealNotFound    = errors.New("meal not found")
)

// AccountService creates users and mints their session credential.
type AccountService struct {
	users      repository.Users
	signingKey string
}

func NewAccountService(users repository.Users, signingKey string) *AccountService {
	return &AccountService{users: users, signingKey: signingKey}
}

// Register creates a user with a freshly issued session credential.
// The credential is persisted on the user row and returned to the caller,
// which is expected to hand it to the client as a cookie.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (models.User, string, error) {
	id := uuid.NewString()
	token, err := signSessionToken(s.signingKey, id)
	if err != nil {
		return models.User{}, "", fmt.Errorf("issue session token: %w", err)
	}

	u := models.User{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		Address:      in.Address,
		Weight:       in.Weight,
		Height:       in.Height,
		SessionToken: token,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return models.User{}, "", ErrEmailTaken
		}
		return models.User{}, "", err
	}
	return u, token, nil
}
