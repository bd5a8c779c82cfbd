package review

import (
	"context"

	"restaurantapi/internal/restaurant"
	"restaurantapi/internal/user"
)

// Repository defines the contract for review data storage.
type Repository interface {
	Create(ctx context.Context, rev *Review) error
	ListByRestaurant(ctx context.Context, restaurantID string) ([]Review, error)
	ListByUser(ctx context.Context, userID string) ([]Review, error)
	// RestaurantRating returns the mean rating and review count for a
	// restaurant. A restaurant with no reviews yields (0, 0, nil).
	RestaurantRating(ctx context.Context, restaurantID string) (average float64, count int, err error)
}

// RatingStore is the single write path for a restaurant's derived aggregate
// fields. Only the Aggregator holds a RatingStore; no other component may
// update average_rating / total_reviews.
type RatingStore interface {
	UpdateRating(ctx context.Context, restaurantID string, averageRating float64, totalReviews int) error
}

// UserDirectory resolves users referenced by a review.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}

// RestaurantDirectory resolves restaurants referenced by a review.
type RestaurantDirectory interface {
	GetByID(ctx context.Context, id string) (restaurant.Restaurant, error)
}
