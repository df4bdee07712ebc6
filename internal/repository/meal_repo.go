package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"daily_diet/internal/models"
)

type MealSQLite struct {
	db *sql.DB
}

func NewMealSQLite(db *sql.DB) *MealSQLite {
	return &MealSQLite{db: db}
}

var _ Meals = (*MealSQLite)(nil)

// Every statement below is scoped by user_id; a meal owned by another user
// behaves exactly like a meal that does not exist.
const (
	insertMealSQL = `
		INSERT INTO meals (id, user_id, name, description, is_on_diet, recorded_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectMealsByUserSQL = `
		SELECT id, user_id, name, description, is_on_diet, recorded_at, created_at
		FROM meals WHERE user_id = ?
		ORDER BY created_at ASC, rowid ASC
	`
	selectOwnedMealSQL = `
		SELECT id, user_id, name, description, is_on_diet, recorded_at, created_at
		FROM meals WHERE id = ? AND user_id = ?
	`
	updateOwnedMealSQL = `
		UPDATE meals SET name = ?, description = ?, is_on_diet = ?, recorded_at = ?
		WHERE id = ? AND user_id = ?
	`
	deleteOwnedMealSQL = `
		DELETE FROM meals WHERE id = ? AND user_id = ?
	`
	summaryByUserSQL = `
		SELECT COUNT(*), COALESCE(SUM(is_on_diet), 0)
		FROM meals WHERE user_id = ?
	`
)

// Insert persists a new meal row.
func (r *MealSQLite) Insert(ctx context.Context, m models.Meal) error {
	_, err := r.db.ExecContext(ctx, insertMealSQL,
		m.ID, m.UserID, m.Name, m.Description, m.IsOnDiet,
		m.RecordedAt.UTC(), m.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert meal %q: %w", m.ID, err)
	}
	return nil
}

// ListByUser returns the user's meals in creation order.
func (r *MealSQLite) ListByUser(ctx context.Context, userID string) ([]models.Meal, error) {
	rows, err := r.db.QueryContext(ctx, selectMealsByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list meals for user %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Meal, 0, 16)
	for rows.Next() {
		var m models.Meal
		if err := rows.Scan(&m.ID, &m.UserID, &m.Name, &m.Description, &m.IsOnDiet, &m.RecordedAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan meal row: %w", err)
		}
		m.RecordedAt = m.RecordedAt.UTC()
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOwned fetches one meal by id, scoped to its owner.
// Returns (nil, nil) when the meal is absent or owned by someone else.
func (r *MealSQLite) GetOwned(ctx context.Context, userID, mealID string) (*models.Meal, error) {
	var m models.Meal
	err := r.db.QueryRowContext(ctx, selectOwnedMealSQL, mealID, userID).Scan(
		&m.ID, &m.UserID, &m.Name, &m.Description, &m.IsOnDiet, &m.RecordedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select meal %q: %w", mealID, err)
	}
	m.RecordedAt = m.RecordedAt.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}

// Update replaces the mutable fields of an owned meal.
// Reports false when no row matched (absent or foreign-owned).
func (r *MealSQLite) Update(ctx context.Context, m models.Meal) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateOwnedMealSQL,
		m.Name, m.Description, m.IsOnDiet, m.RecordedAt.UTC(),
		m.ID, m.UserID,
	)
	if err != nil {
		return false, fmt.Errorf("update meal %q: %w", m.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for meal %q: %w", m.ID, err)
	}
	return n > 0, nil
}

// Delete removes an owned meal permanently.
// Reports false when no row matched (absent or foreign-owned).
func (r *MealSQLite) Delete(ctx context.Context, userID, mealID string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteOwnedMealSQL, mealID, userID)
	if err != nil {
		return false, fmt.Errorf("delete meal %q: %w", mealID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for meal %q: %w", mealID, err)
	}
	return n > 0, nil
}

// SummaryByUser computes the meal counts in a single aggregate query.
// OffDiet is derived, so Total = OnDiet + OffDiet always holds.
func (r *MealSQLite) SummaryByUser(ctx context.Context, userID string) (models.MealSummary, error) {
	var s models.MealSummary
	err := r.db.QueryRowContext(ctx, summaryByUserSQL, userID).Scan(&s.Total, &s.OnDiet)
	if err != nil {
		return models.MealSummary{}, fmt.Errorf("summarize meals for user %q: %w", userID, err)
	}
	s.OffDiet = s.Total - s.OnDiet
	return s, nil
}
