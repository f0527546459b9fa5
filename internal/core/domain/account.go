package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingFields       = errors.New("username and password are required")
	ErrPasswordMismatch    = errors.New("passwords do not match")
	ErrUsernameTaken       = errors.New("username already exists")
	ErrDuplicateUsername   = errors.New("duplicate username")
	ErrAccountNotFound     = errors.New("account not found")
	ErrConstraintViolation = errors.New("account has dependent data")
)

// Account is the persisted credential and role record for one user.
// PasswordHash never leaves the service layer: JSON serialization skips it.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
