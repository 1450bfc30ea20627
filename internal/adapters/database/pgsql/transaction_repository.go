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
	"github.com/walletforge/wallet_tracker_backend/internal/utils/pagination"
)

const transactionColumns = `transaction_id, user_id, transaction_type, amount, wallet_id, affected_wallet_ids, source_wallet_id, destination_wallet_id, tags, transaction_date, created_at, created_by, last_updated_at, last_updated_by`

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Ensure TransactionRepository implements the repository facade
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, changes portsrepo.BalanceChanges) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
            INSERT INTO transactions (` + transactionColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
        `
		_, err := tx.Exec(ctx, query,
			txn.TransactionID,
			txn.UserID,
			txn.Type,
			txn.Amount,
			nullableString(txn.WalletID),
			txn.AffectedWalletIDs,
			nullableString(txn.SourceWalletID),
			nullableString(txn.DestinationWalletID),
			txn.Tags,
			txn.TransactionDate,
			txn.CreatedAt,
			txn.CreatedBy,
			txn.LastUpdatedAt,
			txn.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
		return applyBalanceChanges(ctx, tx, changes)
	})
}

func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, changes portsrepo.BalanceChanges) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		query := `
            UPDATE transactions
            SET transaction_type = $1, amount = $2, wallet_id = $3, affected_wallet_ids = $4,
                source_wallet_id = $5, destination_wallet_id = $6, tags = $7,
                transaction_date = $8, last_updated_at = $9, last_updated_by = $10
            WHERE transaction_id = $11;
        `
		cmdTag, err := tx.Exec(ctx, query,
			txn.Type,
			txn.Amount,
			nullableString(txn.WalletID),
			txn.AffectedWalletIDs,
			nullableString(txn.SourceWalletID),
			nullableString(txn.DestinationWalletID),
			txn.Tags,
			txn.TransactionDate,
			txn.LastUpdatedAt,
			txn.LastUpdatedBy,
			txn.TransactionID,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, txn.TransactionID)
		}
		return applyBalanceChanges(ctx, tx, changes)
	})
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, changes portsrepo.BalanceChanges) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
		if err != nil {
			return fmt.Errorf("failed to delete transaction: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return applyBalanceChanges(ctx, tx, changes)
	})
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE transaction_id = $1;
    `
	txn, err := scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID: %w", err)
	}
	return txn, nil
}

func (r *TransactionRepository) ListTransactionsByUser(ctx context.Context, userID, walletID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
    `
	args := []interface{}{userID}

	if walletID != "" {
		// A transaction touches a wallet through any of its references.
		query += ` AND (wallet_id = $2 OR $2 = ANY(affected_wallet_ids) OR source_wallet_id = $2 OR destination_wallet_id = $2)`
		args = append(args, walletID)
	}

	if nextToken != "" {
		transactionDate, createdAt, err := pagination.DecodeToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += fmt.Sprintf(` AND (transaction_date, created_at) < ($%d, $%d)`, len(args)+1, len(args)+2)
		args = append(args, transactionDate, createdAt)
	}

	// Fetch one extra row to detect whether another page exists.
	query += fmt.Sprintf(` ORDER BY transaction_date DESC, created_at DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := collectTransactions(rows)
	if err != nil {
		return nil, "", err
	}

	newNextToken := ""
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		newNextToken = pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
	}

	return txns, newNextToken, nil
}

func (r *TransactionRepository) ListAllTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY transaction_date ASC, created_at ASC;
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactions(rows)
}

// inTx runs fn inside a database transaction, committing on success and
// rolling back on error.
func (r *TransactionRepository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// applyBalanceChanges adjusts stored wallet balances inside the same database
// transaction as the record write, keeping the denormalized balance column
// consistent with the transaction history.
func applyBalanceChanges(ctx context.Context, tx pgx.Tx, changes portsrepo.BalanceChanges) error {
	for walletID, delta := range changes {
		if delta.IsZero() {
			continue
		}
		cmdTag, err := tx.Exec(ctx,
			`UPDATE wallets SET balance = balance + $1, last_updated_at = NOW() WHERE wallet_id = $2;`,
			delta, walletID,
		)
		if err != nil {
			return fmt.Errorf("failed to apply balance change to wallet %s: %w", walletID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
		}
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var walletID, sourceWalletID, destinationWalletID *string
	err := row.Scan(
		&txn.TransactionID,
		&txn.UserID,
		&txn.Type,
		&txn.Amount,
		&walletID,
		&txn.AffectedWalletIDs,
		&sourceWalletID,
		&destinationWalletID,
		&txn.Tags,
		&txn.TransactionDate,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn.WalletID = derefString(walletID)
	txn.SourceWalletID = derefString(sourceWalletID)
	txn.DestinationWalletID = derefString(destinationWalletID)
	return &txn, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
