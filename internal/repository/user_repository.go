package repository

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const userColumns = "id, name, email, password_hash, role, status, created_at, updated_at"

// userRepository implements the UserRepository interface using PostgreSQL.
type userRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewUserRepository creates a new PostgreSQL-backed user repository.
func NewUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) UserRepository {
	return &userRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "user").Logger(),
	}
}

// List retrieves users with pagination.
func (r *userRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2"

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan user row")
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating user rows")
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetByID retrieves a user by ID.
func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

// GetByEmail retrieves a user by email.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *userRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query user")
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &u, nil
}

// Create inserts a new user.
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Status, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", u.ID.String()).Msg("failed to insert user")
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// UpdateStatus toggles a user's account status.
func (r *userRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := r.pool.Exec(ctx,
		"UPDATE users SET status = $2, updated_at = $3 WHERE id = $1",
		id, status, time.Now(),
	)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", id.String()).Msg("failed to update user status")
		return fmt.Errorf("failed to update user status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrUserNotFound
	}

	return nil
}

// Count returns the total number of users.
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count users")
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
