package review

import (
	"context"
	"errors"
	"fmt"
	"log"

	"restaurantapi/internal/restaurant"
	"restaurantapi/internal/user"
)

// Service implements the review submission workflow.
type Service struct {
	repo        Repository
	users       UserDirectory
	restaurants RestaurantDirectory
	aggregator  *Aggregator
}

func NewService(repo Repository, users UserDirectory, restaurants RestaurantDirectory, aggregator *Aggregator) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		restaurants: restaurants,
		aggregator:  aggregator,
	}
}

// Submit validates the referenced user and restaurant, persists the review
// with server-assigned timestamps, then synchronously recomputes the
// restaurant's aggregate before returning. If the recompute fails the review
// stays persisted and the error is returned; the aggregate is a pure
// function of the review set, so the next successful recompute heals it.
func (s *Service) Submit(ctx context.Context, restaurantID, userID string, rating int, comment string) (Review, error) {
	if rating < 1 || rating > 5 {
		return Review{}, ErrInvalidRating
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return Review{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return Review{}, err
	}
	if _, err := s.restaurants.GetByID(ctx, restaurantID); err != nil {
		if errors.Is(err, restaurant.ErrNotFound) {
			return Review{}, fmt.Errorf("restaurant %s: %w", restaurantID, ErrNotFound)
		}
		return Review{}, err
	}

	rev := &Review{
		UserID:       userID,
		RestaurantID: restaurantID,
		Rating:       rating,
		Comment:      comment,
	}
	if err := s.repo.Create(ctx, rev); err != nil {
		return Review{}, err
	}

	if err := s.aggregator.Recompute(ctx, restaurantID); err != nil {
		log.Printf("rating recompute failed after review create: restaurant_id=%s review_id=%s error=%v",
			restaurantID, rev.ID, err)
		return Review{}, err
	}
	return *rev, nil
}

func (s *Service) ListByRestaurant(ctx context.Context, restaurantID string) ([]Review, error) {
	return s.repo.ListByRestaurant(ctx, restaurantID)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Review, error) {
	return s.repo.ListByUser(ctx, userID)
}
