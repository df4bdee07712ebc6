package service

import (
	"context"

	"daily_diet/internal/models"
	"daily_diet/internal/repository"
)

// SummaryService derives counts from the current ledger state on demand.
// It keeps no state of its own, so the result always reflects the store at
// the moment of the call.
type SummaryService struct {
	meals repository.Meals
}

func NewSummaryService(meals repository.Meals) *SummaryService {
	return &SummaryService{meals: meals}
}

// Summarize returns {total, on_diet, off_diet} for the user's meals.
// A user with no meals gets zeros, not an error.
func (s *SummaryService) Summarize(ctx context.Context, userID string) (models.MealSummary, error) {
	return s.meals.SummaryByUser(ctx, userID)
}
