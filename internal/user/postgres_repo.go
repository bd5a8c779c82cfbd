package user

import (
	"context"
	"errors"
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

func (r *PostgresRepo) Create(ctx context.Context, u *User) error {
	const query = `
	INSERT INTO users (id, username, email, password_hash, role)
	VALUES (gen_random_uuid(), $1, $2, $3, COALESCE(NULLIF($4, ''), 'USER'))
	RETURNING id, role, created_at, updated_at
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.db.QueryRow(timeoutCtx, query, u.Username, u.Email, u.Password, u.Role).
		Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
}

func (r *PostgresRepo) GetByID(ctx context.Context, id string) (User, error) {
	const query = `
	SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users WHERE id = $1 LIMIT 1
	`
	return r.getOne(ctx, query, id)
}

func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	const query = `
	SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users WHERE username = $1 LIMIT 1
	`
	return r.getOne(ctx, query, username)
}

func (r *PostgresRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
	SELECT id, username, email, password_hash, role, created_at, updated_at
	FROM users WHERE email = $1 LIMIT 1
	`
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepo) getOne(ctx context.Context, query string, arg any) (User, error) {
	var u User
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

func (r *PostgresRepo) Count(ctx context.Context) (int, error) {
	var count int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

func (r *PostgresRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`
	return r.exists(ctx, query, username)
}

func (r *PostgresRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	return r.exists(ctx, query, email)
}

func (r *PostgresRepo) exists(ctx context.Context, query string, arg any) (bool, error) {
	var found bool
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, query, arg).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
