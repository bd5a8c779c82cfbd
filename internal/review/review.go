package review

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a referenced user or restaurant does not exist.
	ErrNotFound = errors.New("user or restaurant not found")
	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
)

// Review represents a single user's review of a restaurant. Reviews are
// immutable once created; the user and restaurant ids are lookup keys, not
// owning references.
type Review struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
