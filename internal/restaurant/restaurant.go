package restaurant

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a restaurant is not found.
var ErrNotFound = errors.New("restaurant not found")

// Price range symbols, cheapest to most expensive.
const (
	PriceCheap     = "$"
	PriceModerate  = "$$"
	PriceExpensive = "$$$"
	PriceLuxury    = "$$$$"
)

// Restaurant represents a restaurant entity.
//
// AverageRating and TotalReviews are derived from the review set. They are
// written only by the rating aggregator; the public Repository interface
// deliberately has no way to set them.
type Restaurant struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Address       string    `json:"address,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Website       string    `json:"website,omitempty"`
	CuisineType   string    `json:"cuisine_type,omitempty"`
	PriceRange    string    `json:"price_range,omitempty"`
	Latitude      float64   `json:"latitude,omitempty"`
	Longitude     float64   `json:"longitude,omitempty"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int       `json:"total_reviews"`
	PlaceID       string    `json:"place_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
