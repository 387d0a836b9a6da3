package domain

import (
	"errors"
	"time"
)

const (
	RoleEmployer = "employer"
	RoleManager  = "manager"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrInvalidRole = errors.New("invalid role")
var ErrManagerHasLeads = errors.New("manager has assigned leads")

// IsValidRole reports whether role is one of the two recognised roles.
func IsValidRole(role string) bool {
	return role == RoleEmployer || role == RoleManager
}

// User models an authenticated actor in the system. PasswordHash never
// leaves the process: it is excluded from JSON serialisation.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
