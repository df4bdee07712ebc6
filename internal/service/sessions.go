package service

import (
	"context"
	"fmt"

	"daily_diet/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims binds a signed credential to one user id.
// No expiry claim is set: sessions are permanent once issued.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// SessionService resolves presented credentials to user ids.
type SessionService struct {
	users      repository.Users
	signingKey string
}

func NewSessionService(users repository.Users, signingKey string) *SessionService {
	return &SessionService{users: users, signingKey: signingKey}
}

// Resolve validates the credential and returns the owning user id.
// It fails closed: a missing, malformed, tampered, or unknown credential
// yields ErrUnauthenticated, never a fallback identity. The signature check
// alone is not enough — the credential must also match the token stored on
// the user row, so an administratively cleared token stops resolving.
func (s *SessionService) Resolve(ctx context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrUnauthenticated
	}

	claims, err := parseSessionToken(s.signingKey, credential)
	if err != nil {
		return "", ErrUnauthenticated
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}
	if u == nil || u.SessionToken == "" || u.SessionToken != credential {
		return "", ErrUnauthenticated
	}
	return u.ID, nil
}

// helper: sign a session token for a user
func signSessionToken(signingKey, userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		UserID: userID,
	})
	return token.SignedString([]byte(signingKey))
}

// helper: parse and verify a session token
func parseSessionToken(signingKey, credential string) (*sessionClaims, error) {
	token, err := jwt.ParseWithClaims(credential, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrUnauthenticated
	}
	return claims, nil
}
