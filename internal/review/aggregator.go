package review

import (
	"context"
	"math"
	"sync"
)

// Aggregator recomputes a restaurant's denormalized average_rating and
// total_reviews from the review set. It is the only component allowed to
// write those fields, and it serializes recomputation per restaurant so two
// concurrent submissions cannot race on a stale aggregate.
type Aggregator struct {
	reviews Repository
	ratings RatingStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAggregator(reviews Repository, ratings RatingStore) *Aggregator {
	return &Aggregator{
		reviews: reviews,
		ratings: ratings,
		locks:   make(map[string]*sync.Mutex),
	}
}

// Recompute reads the mean rating and review count for restaurantID and
// writes them back, rounding the mean half-up to one decimal. A restaurant
// with zero reviews keeps whatever rating fields it was seeded with, and an
// unknown id is a no-op: the rating update matches nothing. Store errors
// propagate to the caller.
func (a *Aggregator) Recompute(ctx context.Context, restaurantID string) error {
	lock := a.lockFor(restaurantID)
	lock.Lock()
	defer lock.Unlock()

	average, count, err := a.reviews.RestaurantRating(ctx, restaurantID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	rounded := math.Round(average*10) / 10
	return a.ratings.UpdateRating(ctx, restaurantID, rounded, count)
}

func (a *Aggregator) lockFor(restaurantID string) *sync.Mutex {
	a.mu.Lock()
	defer a.mu.Unlock()
	lock, ok := a.locks[restaurantID]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[restaurantID] = lock
	}
	return lock
}
