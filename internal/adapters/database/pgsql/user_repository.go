package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations.
const uniqueViolationCode = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure UserRepository implements the repository facade
var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, name, email, password_hash, default_currency_code, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.DefaultCurrencyCode,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: email %s", apperrors.ErrDuplicate, user.Email)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT user_id, name, email, password_hash, default_currency_code, created_at, created_by, last_updated_at, last_updated_by
        FROM users
        WHERE user_id = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, userID))
}

func (r *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT user_id, name, email, password_hash, default_currency_code, created_at, created_by, last_updated_at, last_updated_by
        FROM users
        WHERE email = $1;
    `
	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
        UPDATE users
        SET name = $1, default_currency_code = $2, last_updated_at = $3, last_updated_by = $4
        WHERE user_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.DefaultCurrencyCode,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
		user.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
	}
	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.DefaultCurrencyCode,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}
	return &user, nil
}
