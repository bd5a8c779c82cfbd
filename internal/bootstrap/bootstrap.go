// Package bootstrap seeds the fixed demo catalog on first run and
// reconciles every restaurant's rating aggregate against its reviews.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"restaurantapi/internal/restaurant"
	"restaurantapi/internal/review"
	"restaurantapi/internal/user"
)

type RestaurantStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, r *restaurant.Restaurant) error
	List(ctx context.Context) ([]restaurant.Restaurant, error)
	SearchByName(ctx context.Context, name string) ([]restaurant.Restaurant, error)
}

type UserStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, u *user.User) error
	GetByUsername(ctx context.Context, username string) (user.User, error)
}

type ReviewStore interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, rev *review.Review) error
}

// Hasher turns a plaintext credential into its stored form.
type Hasher func(plaintext string) (string, error)

type Bootstrapper struct {
	restaurants RestaurantStore
	users       UserStore
	reviews     ReviewStore
	aggregator  *review.Aggregator
	hash        Hasher
}

func New(restaurants RestaurantStore, users UserStore, reviews ReviewStore, aggregator *review.Aggregator, hash Hasher) *Bootstrapper {
	return &Bootstrapper{
		restaurants: restaurants,
		users:       users,
		reviews:     reviews,
		aggregator:  aggregator,
		hash:        hash,
	}
}

// Run seeds the catalog when all three stores are empty, then reconciles
// every restaurant's aggregate. The reconciliation pass always runs and is
// idempotent, so a partially failed earlier run heals on the next start.
func (b *Bootstrapper) Run(ctx context.Context) error {
	empty, err := b.allEmpty(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap check: %w", err)
	}
	if empty {
		if err := b.seedRestaurants(ctx); err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		if err := b.seedUsers(ctx); err != nil {
			return fmt.Errorf("seed users: %w", err)
		}
		b.seedReviews(ctx)
		log.Println("bootstrap: seed data created")
	} else {
		log.Println("bootstrap: stores not empty, skipping seed")
	}
	return b.ReconcileAll(ctx)
}

func (b *Bootstrapper) allEmpty(ctx context.Context) (bool, error) {
	for _, count := range []func(context.Context) (int, error){
		b.restaurants.Count, b.users.Count, b.reviews.Count,
	} {
		n, err := count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// ReconcileAll recomputes the rating aggregate of every restaurant from its
// current review set, so displayed aggregates match the seed reviews without
// hand-computed values.
func (b *Bootstrapper) ReconcileAll(ctx context.Context) error {
	restaurants, err := b.restaurants.List(ctx)
	if err != nil {
		return fmt.Errorf("reconcile list: %w", err)
	}
	for _, r := range restaurants {
		if err := b.aggregator.Recompute(ctx, r.ID); err != nil {
			return fmt.Errorf("reconcile %s: %w", r.ID, err)
		}
	}
	log.Printf("bootstrap: reconciled ratings for %d restaurants", len(restaurants))
	return nil
}

func (b *Bootstrapper) seedRestaurants(ctx context.Context) error {
	for _, r := range seedRestaurants() {
		seeded := r
		if err := b.restaurants.Create(ctx, &seeded); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bootstrapper) seedUsers(ctx context.Context) error {
	for _, s := range seedUsers() {
		hashed, err := b.hash(s.password)
		if err != nil {
			return err
		}
		u := user.User{
			Username: s.username,
			Email:    s.email,
			Password: hashed,
			Role:     s.role,
		}
		if err := b.users.Create(ctx, &u); err != nil {
			return err
		}
	}
	return nil
}

// seedReviews wires each seed review to its restaurant and user by lookup.
// A review whose lookups fail is skipped rather than aborting the whole
// bootstrap.
func (b *Bootstrapper) seedReviews(ctx context.Context) {
	for _, s := range seedReviews() {
		u, err := b.users.GetByUsername(ctx, s.username)
		if err != nil {
			log.Printf("bootstrap: skipping seed review, user %q not found: %v", s.username, err)
			continue
		}
		matches, err := b.restaurants.SearchByName(ctx, s.restaurantName)
		if err != nil || len(matches) == 0 {
			log.Printf("bootstrap: skipping seed review, restaurant %q not found: %v", s.restaurantName, err)
			continue
		}
		rev := review.Review{
			UserID:       u.ID,
			RestaurantID: matches[0].ID,
			Rating:       s.rating,
			Comment:      s.comment,
		}
		if err := b.reviews.Create(ctx, &rev); err != nil {
			log.Printf("bootstrap: skipping seed review for %q: %v", s.restaurantName, err)
		}
	}
}
