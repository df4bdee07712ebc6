package service

import (
	"context"
	"time"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"

	"github.com/google/uuid"
)

// MealService is the ledger over the meals repository. Ownership is enforced
// one layer down (every query is scoped by user_id); this service only maps
// "no matching row" onto ErrMealNotFound, which deliberately conflates
// non-existence with foreign ownership.
type MealService struct {
	meals repository.Meals
}

func NewMealService(meals repository.Meals) *MealService {
	return &MealService{meals: meals}
}

// Create persists a new meal owned by userID and returns it.
func (s *MealService) Create(ctx context.Context, userID string, in MealInput) (models.Meal, error) {
	now := time.Now().UTC()
	recordedAt := in.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = now
	}
	m := models.Meal{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		IsOnDiet:    in.IsOnDiet,
		RecordedAt:  recordedAt.UTC(),
		CreatedAt:   now,
	}
	if err := s.meals.Insert(ctx, m); err != nil {
		return models.Meal{}, err
	}
	return m, nil
}

// List returns the user's meals in creation order; empty slice when none.
func (s *MealService) List(ctx context.Context, userID string) ([]models.Meal, error) {
	return s.meals.ListByUser(ctx, userID)
}

// Get fetches one owned meal.
func (s *MealService) Get(ctx context.Context, userID, mealID string) (models.Meal, error) {
	m, err := s.meals.GetOwned(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, err
	}
	if m == nil {
		return models.Meal{}, ErrMealNotFound
	}
	return *m, nil
}

// Update replaces the mutable fields of an owned meal and returns the result.
// id, user_id and created_at are immutable.
func (s *MealService) Update(ctx context.Context, userID, mealID string, in MealInput) (models.Meal, error) {
	m, err := s.meals.GetOwned(ctx, userID, mealID)
	if err != nil {
		return models.Meal{}, err
	}
	if m == nil {
		return models.Meal{}, ErrMealNotFound
	}

	m.Name = in.Name
	m.Description = in.Description
	m.IsOnDiet = in.IsOnDiet
	if !in.RecordedAt.IsZero() {
		m.RecordedAt = in.RecordedAt.UTC()
	}

	ok, err := s.meals.Update(ctx, *m)
	if err != nil {
		return models.Meal{}, err
	}
	if !ok {
		// deleted between the read and the write
		return models.Meal{}, ErrMealNotFound
	}
	return *m, nil
}

// Delete removes an owned meal. Deleting an already-deleted or never-existing
// id is indistinguishable: both report ErrMealNotFound.
func (s *MealService) Delete(ctx context.Context, userID, mealID string) error {
	ok, err := s.meals.Delete(ctx, userID, mealID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrMealNotFound
	}
	return nil
}
