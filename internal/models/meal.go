package models

import "time"

// Meal is a single ledger entry, always owned by exactly one user.
type Meal struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsOnDiet    bool      `json:"is_on_diet"`
	RecordedAt  time.Time `json:"recorded_at"` // when the meal was eaten; defaults to creation time
	CreatedAt   time.Time `json:"created_at"`
}

// MealSummary holds the derived counts over one user's meals.
// OffDiet is always Total - OnDiet.
type MealSummary struct {
	Total   int `json:"total"`
	OnDiet  int `json:"on_diet"`
	OffDiet int `json:"off_diet"`
}
