package service

import (
	"context"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

// Accounts registers users and issues their session credential.
type Accounts interface {
	Register(ctx context.Context, in RegisterInput) (models.User, string, error)
}

// Sessions resolves a presented credential to the owning user id.
type Sessions interface {
	Resolve(ctx context.Context, credential string) (string, error)
}

// Meals is the ownership-scoped ledger; every call is parameterized by the
// resolved user id and never touches another user's records.
type Meals interface {
	Create(ctx context.Context, userID string, in MealInput) (models.Meal, error)
	List(ctx context.Context, userID string) ([]models.Meal, error)
	Get(ctx context.Context, userID, mealID string) (models.Meal, error)
	Update(ctx context.Context, userID, mealID string, in MealInput) (models.Meal, error)
	Delete(ctx context.Context, userID, mealID string) error
}

// Summary computes derived counts over the current ledger state.
type Summary interface {
	Summarize(ctx context.Context, userID string) (models.MealSummary, error)
}

// RegisterInput carries the registration fields.
type RegisterInput struct {
	Name    string
	Email   string
	Address string
	Weight  float64
	Height  float64
}

// MealInput carries the mutable meal fields for create and update.
// A zero RecordedAt means "now".
type MealInput struct {
	Name        string
	Description string
	IsOnDiet    bool
	RecordedAt  time.Time
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Accounts
	Sessions
	Meals
	Summary
}

// NewService wires the repository layer into the concrete services.
// signingKey is the HMAC secret for session credentials.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Accounts: NewAccountService(repos.Users, signingKey),
		Sessions: NewSessionService(repos.Users, signingKey),
		Meals:    NewMealService(repos.Meals),
		Summary:  NewSummaryService(repos.Meals),
	}
}
