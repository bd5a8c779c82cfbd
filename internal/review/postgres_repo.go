package review

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

func (r *PostgresRepo) Create(ctx context.Context, rev *Review) error {
	const query = `
	INSERT INTO reviews (id, user_id, restaurant_id, rating, comment)
	VALUES (gen_random_uuid(), $1, $2, $3, NULLIF($4, ''))
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, rev.UserID, rev.RestaurantID, rev.Rating, rev.Comment).
		Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)
}

func (r *PostgresRepo) ListByRestaurant(ctx context.Context, restaurantID string) ([]Review, error) {
	const query = `
	SELECT id, user_id, restaurant_id, rating, comment, created_at, updated_at
	FROM reviews WHERE restaurant_id = $1 ORDER BY created_at DESC
	`
	return r.list(ctx, query, restaurantID)
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Review, error) {
	const query = `
	SELECT id, user_id, restaurant_id, rating, comment, created_at, updated_at
	FROM reviews WHERE user_id = $1 ORDER BY created_at DESC
	`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepo) list(ctx context.Context, query string, arg any) ([]Review, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, arg)
	if err != nil {
		return nil, err
	}
	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Review, error) {
		var rev Review
		var comment *string
		err := row.Scan(&rev.ID, &rev.UserID, &rev.RestaurantID, &rev.Rating, &comment, &rev.CreatedAt, &rev.UpdatedAt)
		if comment != nil {
			rev.Comment = *comment
		}
		return rev, err
	})
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []Review{}
	}
	return reviews, nil
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM reviews`).Scan(&count)
	return count, err
}

func (r *PostgresRepo) RestaurantRating(ctx context.Context, restaurantID string) (float64, int, error) {
	const query = `
	SELECT AVG(rating)::FLOAT, COUNT(rating)
	FROM reviews
	WHERE restaurant_id = $1
	`
	var average sql.NullFloat64
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, restaurantID).Scan(&average, &count); err != nil {
		return 0, 0, err
	}
	if !average.Valid {
		return 0, 0, nil
	}
	return average.Float64, count, nil
}
