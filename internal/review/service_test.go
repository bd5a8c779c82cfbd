package review

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"restaurantapi/internal/restaurant"
	"restaurantapi/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memReviews is an in-memory Repository.
type memReviews struct {
	mu         sync.Mutex
	reviews    []Review
	nextID     int
	createErr  error
	ratingsErr error
}

func (m *memReviews) Create(ctx context.Context, rev *Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	rev.ID = fmt.Sprintf("review-%d", m.nextID)
	rev.CreatedAt = time.Now()
	rev.UpdatedAt = rev.CreatedAt
	m.reviews = append(m.reviews, *rev)
	return nil
}

func (m *memReviews) ListByRestaurant(ctx context.Context, restaurantID string) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Review{}
	for _, rev := range m.reviews {
		if rev.RestaurantID == restaurantID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (m *memReviews) ListByUser(ctx context.Context, userID string) ([]Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Review{}
	for _, rev := range m.reviews {
		if rev.UserID == userID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (m *memReviews) RestaurantRating(ctx context.Context, restaurantID string) (float64, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ratingsErr != nil {
		return 0, 0, m.ratingsErr
	}
	sum, count := 0, 0
	for _, rev := range m.reviews {
		if rev.RestaurantID == restaurantID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

// memRestaurants is an in-memory restaurant directory and rating store.
type memRestaurants struct {
	mu           sync.Mutex
	restaurants  map[string]restaurant.Restaurant
	ratingWrites int
	updateErr    error
}

func newMemRestaurants(restaurants ...restaurant.Restaurant) *memRestaurants {
	m := &memRestaurants{restaurants: make(map[string]restaurant.Restaurant)}
	for _, r := range restaurants {
		m.restaurants[r.ID] = r
	}
	return m
}

func (m *memRestaurants) GetByID(ctx context.Context, id string) (restaurant.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.restaurants[id]
	if !ok {
		return restaurant.Restaurant{}, restaurant.ErrNotFound
	}
	return r, nil
}

// UpdateRating mirrors the SQL semantics: a missing id matches nothing and
// is not an error.
func (m *memRestaurants) UpdateRating(ctx context.Context, id string, averageRating float64, totalReviews int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.updateErr != nil {
		return m.updateErr
	}
	r, ok := m.restaurants[id]
	if !ok {
		return nil
	}
	r.AverageRating = averageRating
	r.TotalReviews = totalReviews
	m.restaurants[id] = r
	m.ratingWrites++
	return nil
}

type memUsers struct {
	users map[string]user.User
}

func (m *memUsers) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func testFixtures() (*memReviews, *memRestaurants, *memUsers) {
	reviews := &memReviews{}
	restaurants := newMemRestaurants(
		restaurant.Restaurant{ID: "rest-1", Name: "Joe Beef", AverageRating: 4.5, TotalReviews: 0},
		restaurant.Restaurant{ID: "rest-2", Name: "Schwartz's Deli", AverageRating: 4.2, TotalReviews: 0},
	)
	users := &memUsers{users: map[string]user.User{
		"user-1": {ID: "user-1", Username: "foodlover"},
	}}
	return reviews, restaurants, users
}

func TestAggregator_Recompute(t *testing.T) {
	ctx := context.Background()

	t.Run("computes rounded mean and count", func(t *testing.T) {
		reviews, restaurants, _ := testFixtures()
		agg := NewAggregator(reviews, restaurants)
		for _, rating := range []int{1, 2, 3, 3} {
			require.NoError(t, reviews.Create(ctx, &Review{UserID: "user-1", RestaurantID: "rest-1", Rating: rating}))
		}

		require.NoError(t, agg.Recompute(ctx, "rest-1"))

		r, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)
		// mean 2.25 rounds half-up to 2.3
		assert.Equal(t, 2.3, r.AverageRating)
		assert.Equal(t, 4, r.TotalReviews)
	})

	t.Run("zero reviews leaves seed values untouched", func(t *testing.T) {
		reviews, restaurants, _ := testFixtures()
		agg := NewAggregator(reviews, restaurants)

		require.NoError(t, agg.Recompute(ctx, "rest-1"))

		r, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)
		assert.Equal(t, 4.5, r.AverageRating)
		assert.Equal(t, 0, r.TotalReviews)
		assert.Equal(t, 0, restaurants.ratingWrites)
	})

	t.Run("unknown restaurant is a no-op", func(t *testing.T) {
		reviews, restaurants, _ := testFixtures()
		agg := NewAggregator(reviews, restaurants)

		assert.NoError(t, agg.Recompute(ctx, "no-such-id"))
	})

	t.Run("idempotent without review changes", func(t *testing.T) {
		reviews, restaurants, _ := testFixtures()
		agg := NewAggregator(reviews, restaurants)
		require.NoError(t, reviews.Create(ctx, &Review{UserID: "user-1", RestaurantID: "rest-1", Rating: 4}))

		require.NoError(t, agg.Recompute(ctx, "rest-1"))
		first, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)

		require.NoError(t, agg.Recompute(ctx, "rest-1"))
		second, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)

		assert.Equal(t, first.AverageRating, second.AverageRating)
		assert.Equal(t, first.TotalReviews, second.TotalReviews)
	})

	t.Run("store error propagates", func(t *testing.T) {
		reviews, restaurants, _ := testFixtures()
		reviews.ratingsErr = errors.New("connection lost")
		agg := NewAggregator(reviews, restaurants)

		assert.Error(t, agg.Recompute(ctx, "rest-1"))
	})
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	newService := func(reviews *memReviews, restaurants *memRestaurants, users *memUsers) *Service {
		return NewService(reviews, users, restaurants, NewAggregator(reviews, restaurants))
	}

	t.Run("creates review and updates aggregate before returning", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		svc := newService(reviews, restaurants, users)

		rev, err := svc.Submit(ctx, "rest-1", "user-1", 5, "Incredible steak")
		require.NoError(t, err)
		assert.NotEmpty(t, rev.ID)
		assert.False(t, rev.CreatedAt.IsZero())

		r, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)
		assert.Equal(t, 5.0, r.AverageRating)
		assert.Equal(t, 1, r.TotalReviews)
	})

	t.Run("second review recomputes the mean", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		svc := newService(reviews, restaurants, users)

		_, err := svc.Submit(ctx, "rest-1", "user-1", 5, "")
		require.NoError(t, err)
		_, err = svc.Submit(ctx, "rest-1", "user-1", 3, "")
		require.NoError(t, err)

		r, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)
		assert.Equal(t, 4.0, r.AverageRating)
		assert.Equal(t, 2, r.TotalReviews)
	})

	t.Run("rating out of range", func(t *testing.T) {
		for _, rating := range []int{0, 6, -1} {
			reviews, restaurants, users := testFixtures()
			svc := newService(reviews, restaurants, users)

			_, err := svc.Submit(ctx, "rest-1", "user-1", rating, "")
			assert.ErrorIs(t, err, ErrInvalidRating)
			assert.Empty(t, reviews.reviews)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		svc := newService(reviews, restaurants, users)

		_, err := svc.Submit(ctx, "rest-1", "no-such-user", 4, "")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, reviews.reviews)

		r, gerr := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, gerr)
		assert.Equal(t, 4.5, r.AverageRating)
		assert.Equal(t, 0, r.TotalReviews)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		svc := newService(reviews, restaurants, users)

		_, err := svc.Submit(ctx, "no-such-restaurant", "user-1", 4, "")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, reviews.reviews)
	})

	t.Run("recompute failure keeps review and reports error", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		restaurants.updateErr = errors.New("connection lost")
		svc := newService(reviews, restaurants, users)

		_, err := svc.Submit(ctx, "rest-1", "user-1", 4, "")
		assert.Error(t, err)
		assert.Len(t, reviews.reviews, 1)
	})

	t.Run("concurrent submissions settle on the full mean", func(t *testing.T) {
		reviews, restaurants, users := testFixtures()
		svc := newService(reviews, restaurants, users)

		ratings := []int{1, 2, 3, 4, 5, 5, 5, 5}
		var wg sync.WaitGroup
		for _, rating := range ratings {
			wg.Add(1)
			go func(rating int) {
				defer wg.Done()
				_, err := svc.Submit(ctx, "rest-1", "user-1", rating, "")
				assert.NoError(t, err)
			}(rating)
		}
		wg.Wait()

		r, err := restaurants.GetByID(ctx, "rest-1")
		require.NoError(t, err)
		// sum 30 over 8 reviews
		assert.Equal(t, 3.8, r.AverageRating)
		assert.Equal(t, 8, r.TotalReviews)
	})
}
