package restaurant

import (
	"context"
)

// Repository defines the contract for restaurant data storage.
//
// Updating a restaurant's rating fields is intentionally not part of this
// interface; see review.RatingStore.
type Repository interface {
	Create(ctx context.Context, r *Restaurant) error
	GetByID(ctx context.Context, id string) (Restaurant, error)
	GetByPlaceID(ctx context.Context, placeID string) (Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)
	SearchByName(ctx context.Context, name string) ([]Restaurant, error)
	ListByCuisine(ctx context.Context, cuisineType string) ([]Restaurant, error)
	ListByPriceRange(ctx context.Context, priceRange string) ([]Restaurant, error)
	ListByMinRating(ctx context.Context, minRating float64) ([]Restaurant, error)
}
