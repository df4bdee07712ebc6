package models

// User is a registered account. SessionToken is the credential issued at
// registration and presented (via cookie) on every authenticated request.
type User struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Address      string  `json:"address"`
	Weight       float64 `json:"weight"` // kg
	Height       float64 `json:"height"` // cm
	SessionToken string  `json:"-"`      // don't expose the credential
}
