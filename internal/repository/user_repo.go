package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"daily_diet/internal/models"
)

// ErrEmailExists signals a UNIQUE(email) violation on insert.
var ErrEmailExists = errors.New("email already registered")

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `
		INSERT INTO users (id, name, email, address, weight, height, session_token)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectUserByIDSQL = `
		SELECT id, name, email, address, weight, height, session_token
		FROM users WHERE id = ?
	`
)

// Create inserts a new user row, session token included.
func (r *UserSQLite) Create(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, insertUserSQL,
		u.ID, u.Name, u.Email, u.Address, u.Weight, u.Height, u.SessionToken,
	)
	if err != nil {
		if isUniqueEmailErr(err) {
			return ErrEmailExists
		}
		return fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	var token sql.NullString
	err := r.db.QueryRowContext(ctx, selectUserByIDSQL, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Address, &u.Weight, &u.Height, &token,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", id, err)
	}
	u.SessionToken = token.String
	return &u, nil
}

// isUniqueEmailErr matches the sqlite constraint error for users.email.
func isUniqueEmailErr(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}
