package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
)

type WalletRepository struct {
	db *pgxpool.Pool
}

func NewWalletRepository(db *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{db: db}
}

// Ensure WalletRepository implements the repository facade
var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)

func (r *WalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
        INSERT INTO wallets (wallet_id, user_id, name, wallet_type, currency_code, balance, initial_balance, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		wallet.WalletID,
		wallet.UserID,
		wallet.Name,
		wallet.WalletType,
		wallet.CurrencyCode,
		wallet.Balance,
		wallet.InitialBalance,
		wallet.CreatedAt,
		wallet.CreatedBy,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save wallet: %w", err)
	}
	return nil
}

func (r *WalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `
        SELECT wallet_id, user_id, name, wallet_type, currency_code, balance, initial_balance, created_at, created_by, last_updated_at, last_updated_by
        FROM wallets
        WHERE wallet_id = $1;
    `
	var wallet domain.Wallet
	err := r.db.QueryRow(ctx, query, walletID).Scan(
		&wallet.WalletID,
		&wallet.UserID,
		&wallet.Name,
		&wallet.WalletType,
		&wallet.CurrencyCode,
		&wallet.Balance,
		&wallet.InitialBalance,
		&wallet.CreatedAt,
		&wallet.CreatedBy,
		&wallet.LastUpdatedAt,
		&wallet.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wallet by ID: %w", err)
	}
	return &wallet, nil
}

func (r *WalletRepository) ListWalletsByUser(ctx context.Context, userID string) ([]domain.Wallet, error) {
	query := `
        SELECT wallet_id, user_id, name, wallet_type, currency_code, balance, initial_balance, created_at, created_by, last_updated_at, last_updated_by
        FROM wallets
        WHERE user_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallets: %w", err)
	}
	defer rows.Close()

	wallets := []domain.Wallet{}
	for rows.Next() {
		var wallet domain.Wallet
		err := rows.Scan(
			&wallet.WalletID,
			&wallet.UserID,
			&wallet.Name,
			&wallet.WalletType,
			&wallet.CurrencyCode,
			&wallet.Balance,
			&wallet.InitialBalance,
			&wallet.CreatedAt,
			&wallet.CreatedBy,
			&wallet.LastUpdatedAt,
			&wallet.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan wallet row: %w", err)
		}
		wallets = append(wallets, wallet)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating wallet rows: %w", rows.Err())
	}

	return wallets, nil
}

func (r *WalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) error {
	// currency_code is deliberately absent: it is immutable after creation.
	query := `
        UPDATE wallets
        SET name = $1, balance = $2, last_updated_at = $3, last_updated_by = $4
        WHERE wallet_id = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		wallet.Name,
		wallet.Balance,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
		wallet.WalletID,
	)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, wallet.WalletID)
	}
	return nil
}

func (r *WalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	query := `DELETE FROM wallets WHERE wallet_id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, walletID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
	}
	return nil
}
