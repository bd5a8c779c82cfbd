package restaurant

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const restaurantColumns = `id, name, description, address, phone, website, cuisine_type, price_range,
	latitude, longitude, average_rating, total_reviews, place_id, created_at, updated_at`

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

func (r *PostgresRepo) Create(ctx context.Context, rest *Restaurant) error {
	const query = `
	INSERT INTO restaurants (id, name, description, address, phone, website, cuisine_type, price_range,
		latitude, longitude, average_rating, total_reviews, place_id)
	VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NULLIF($12, ''))
	RETURNING id, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query,
		rest.Name, rest.Description, rest.Address, rest.Phone, rest.Website,
		rest.CuisineType, rest.PriceRange, rest.Latitude, rest.Longitude,
		rest.AverageRating, rest.TotalReviews, rest.PlaceID,
	).Scan(&rest.ID, &rest.CreatedAt, &rest.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE id = $1 LIMIT 1`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) GetByPlaceID(ctx context.Context, placeID string) (Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE place_id = $1 LIMIT 1`
	return r.getOne(ctx, query, placeID)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (Restaurant, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, arg)
	if err != nil {
		return Restaurant{}, err
	}
	rest, err := pgx.CollectOneRow(rows, scanRestaurant)
	if errors.Is(err, pgx.ErrNoRows) {
		return Restaurant{}, ErrNotFound
	}
	return rest, err
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM restaurants`).Scan(&count)
	return count, err
}

func (r *PostgresRepo) List(ctx context.Context) ([]Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants ORDER BY name`
	return r.list(ctx, query)
}

func (r *PostgresRepo) SearchByName(ctx context.Context, name string) ([]Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE name ILIKE '%' || $1 || '%' ORDER BY name`
	return r.list(ctx, query, name)
}

func (r *PostgresRepo) ListByCuisine(ctx context.Context, cuisineType string) ([]Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE cuisine_type = $1 ORDER BY name`
	return r.list(ctx, query, cuisineType)
}

func (r *PostgresRepo) ListByPriceRange(ctx context.Context, priceRange string) ([]Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE price_range = $1 ORDER BY name`
	return r.list(ctx, query, priceRange)
}

func (r *PostgresRepo) ListByMinRating(ctx context.Context, minRating float64) ([]Restaurant, error) {
	const query = `SELECT ` + restaurantColumns + ` FROM restaurants WHERE average_rating >= $1 ORDER BY average_rating DESC`
	return r.list(ctx, query, minRating)
}

func (r *PostgresRepo) list(ctx context.Context, query string, args ...any) ([]Restaurant, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, err
	}
	restaurants, err := pgx.CollectRows(rows, scanRestaurant)
	if err != nil {
		return nil, err
	}
	if restaurants == nil {
		restaurants = []Restaurant{}
	}
	return restaurants, nil
}

// UpdateRating writes the derived aggregate fields. It is exposed through
// review.RatingStore rather than Repository so that only the rating
// aggregator can reach it. A missing id matches zero rows and is not an
// error.
func (r *PostgresRepo) UpdateRating(ctx context.Context, id string, averageRating float64, totalReviews int) error {
	const query = `
	UPDATE restaurants
	SET average_rating = $2, total_reviews = $3, updated_at = now()
	WHERE id = $1
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, id, averageRating, totalReviews)
	return err
}

func scanRestaurant(row pgx.CollectableRow) (Restaurant, error) {
	var rest Restaurant
	var description, address, phone, website, cuisineType, priceRange, placeID *string
	var latitude, longitude *float64
	err := row.Scan(
		&rest.ID, &rest.Name, &description, &address, &phone, &website,
		&cuisineType, &priceRange, &latitude, &longitude,
		&rest.AverageRating, &rest.TotalReviews, &placeID,
		&rest.CreatedAt, &rest.UpdatedAt,
	)
	if err != nil {
		return Restaurant{}, err
	}
	assignString(&rest.Description, description)
	assignString(&rest.Address, address)
	assignString(&rest.Phone, phone)
	assignString(&rest.Website, website)
	assignString(&rest.CuisineType, cuisineType)
	assignString(&rest.PriceRange, priceRange)
	assignString(&rest.PlaceID, placeID)
	if latitude != nil {
		rest.Latitude = *latitude
	}
	if longitude != nil {
		rest.Longitude = *longitude
	}
	return rest, nil
}

func assignString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
