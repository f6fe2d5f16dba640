package model

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User account statuses.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a registered account.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"joinedAt" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// RegisterRequest represents the payload for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the payload for exchanging credentials for a token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// UserStatusRequest represents the payload for the admin status toggle.
type UserStatusRequest struct {
	Status string `json:"status"`
}

// UserDetail is the admin view of a user with their orders embedded.
type UserDetail struct {
	User
	Orders []Order `json:"orders"`
}

// ValidUserStatus reports whether s is a recognised account status.
func ValidUserStatus(s string) bool {
	return s == UserStatusActive || s == UserStatusInactive
}
