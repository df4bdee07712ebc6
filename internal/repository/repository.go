package repository

import (
	"context"
	"database/sql"

	"daily_diet/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type Meals interface {
	Insert(ctx context.Context, m models.Meal) error
	ListByUser(ctx context.Context, userID string) ([]models.Meal, error)
	GetOwned(ctx context.Context, userID, mealID string) (*models.Meal, error)
	Update(ctx context.Context, m models.Meal) (bool, error)
	Delete(ctx context.Context, userID, mealID string) (bool, error)
	SummaryByUser(ctx context.Context, userID string) (models.MealSummary, error)
}

type Repository struct {
	Users Users
	Meals Meals
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserSQLite(db),
		Meals: NewMealSQLite(db),
	}
}
