package user

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a user is not found.
	ErrNotFound = errors.New("user not found")
	// ErrAlreadyExists is returned when the username or email is taken.
	ErrAlreadyExists = errors.New("username or email already exists")
)

// User represents a registered account. The password hash never leaves the
// service layer.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
