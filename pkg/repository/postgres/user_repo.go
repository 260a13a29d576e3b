package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/founderkit/pkg/auth"
)

const pgUniqueViolation = "23505"

const selectUser = `SELECT id, email, password_hash, created_at FROM users`

// UserRepository implements auth.UserRepository on top of pgx.
// The schema is owned by the goose migrations in pkg/storage/postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`, user.ID, strings.ToLower(user.Email), user.PasswordHash, user.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return auth.ErrUserAlreadyExists
	}
	return err
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, selectUser+` WHERE email = $1`, strings.ToLower(email)))
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (auth.User, error) {
	return scanUser(r.pool.QueryRow(ctx, selectUser+` WHERE id = $1`, id))
}

func scanUser(row pgx.Row) (auth.User, error) {
	var u auth.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

var _ auth.UserRepository = (*UserRepository)(nil)
