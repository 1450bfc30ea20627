package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

var (
	ErrAmountNegative       = errors.New("transaction amount must be non-negative")
	ErrTransferSameWallet   = errors.New("transfer source and destination wallets must differ")
	ErrTransferWalletsReq   = errors.New("transfer requires both source and destination wallets")
	ErrNoWalletReference    = errors.New("income/expense must reference affected wallets or a legacy wallet")
	ErrAffectedPairRequired = errors.New("affected wallets must be one physical and one logical wallet")
	ErrTransferFieldsSet    = errors.New("source/destination wallets are only valid for transfers")
)

// transactionService provides business logic for recording financial events.
// Every write keeps the denormalized wallet balances in step with the
// transaction history, inside a single database transaction.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	walletRepo      portsrepo.WalletReader
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, walletRepo portsrepo.WalletReader) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		walletRepo:      walletRepo,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates and persists a new transaction, adjusting the
// stored balances of the wallets it touches.
func (s *transactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	now := time.Now()
	txn := domain.Transaction{
		TransactionID:       uuid.NewString(),
		UserID:              userID,
		Type:                domain.TransactionType(req.Type),
		Amount:              req.Amount,
		WalletID:            req.WalletID,
		AffectedWalletIDs:   req.AffectedWalletIDs,
		SourceWalletID:      req.SourceWalletID,
		DestinationWalletID: req.DestinationWalletID,
		Tags:                req.Tags,
		TransactionDate:     req.TransactionDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.validateTransaction(ctx, &txn); err != nil {
		return nil, err
	}

	changes := balanceChangesFor(&txn, 1)
	if err := s.transactionRepo.SaveTransaction(ctx, txn, changes); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.Any("amount", txn.Amount))
	return &txn, nil
}

// GetTransactionByID retrieves one of the user's transactions.
func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn.UserID != userID {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrForbidden, transactionID)
	}
	return txn, nil
}

// ListTransactions retrieves a page of the user's transactions.
func (s *transactionService) ListTransactions(ctx context.Context, userID, walletID string, limit int, nextToken string) ([]domain.Transaction, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	txns, token, err := s.transactionRepo.ListTransactionsByUser(ctx, userID, walletID, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, token, nil
}

// UpdateTransaction replaces a transaction's content, reversing its old
// effect on stored balances and applying the new one atomically.
func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	existing, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Type = domain.TransactionType(req.Type)
	updated.Amount = req.Amount
	updated.WalletID = req.WalletID
	updated.AffectedWalletIDs = req.AffectedWalletIDs
	updated.SourceWalletID = req.SourceWalletID
	updated.DestinationWalletID = req.DestinationWalletID
	updated.Tags = req.Tags
	updated.TransactionDate = req.TransactionDate
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.validateTransaction(ctx, &updated); err != nil {
		return nil, err
	}

	changes := balanceChangesFor(existing, -1)
	mergeBalanceChanges(changes, balanceChangesFor(&updated, 1))

	if err := s.transactionRepo.UpdateTransaction(ctx, updated, changes); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

// DeleteTransaction removes a transaction and reverses its effect on stored
// balances.
func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	existing, err := s.GetTransactionByID(ctx, userID, transactionID)
	if err != nil {
		return err
	}

	changes := balanceChangesFor(existing, -1)
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, changes); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

// validateTransaction enforces the per-type attribution invariants and checks
// that every referenced wallet exists and belongs to the transaction's user.
func (s *transactionService) validateTransaction(ctx context.Context, txn *domain.Transaction) error {
	if txn.Amount.IsNegative() {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAmountNegative)
	}

	switch txn.Type {
	case domain.Income, domain.Expense:
		if txn.SourceWalletID != "" || txn.DestinationWalletID != "" {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTransferFieldsSet)
		}
		if len(txn.AffectedWalletIDs) > 0 {
			// Current model: one physical plus one logical wallet, both
			// credited/debited with the full amount as independent views.
			if err := s.validateAffectedPair(ctx, txn.UserID, txn.AffectedWalletIDs); err != nil {
				return err
			}
		} else if txn.WalletID != "" {
			// Legacy single-wallet reference.
			if err := s.checkWalletOwned(ctx, txn.UserID, txn.WalletID); err != nil {
				return err
			}
		} else {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrNoWalletReference)
		}
	case domain.Transfer:
		if txn.SourceWalletID == "" || txn.DestinationWalletID == "" {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTransferWalletsReq)
		}
		if txn.SourceWalletID == txn.DestinationWalletID {
			return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrTransferSameWallet)
		}
		if len(txn.AffectedWalletIDs) > 0 || txn.WalletID != "" {
			return fmt.Errorf("%w: transfers use source/destination wallets only", apperrors.ErrValidation)
		}
		if err := s.checkWalletOwned(ctx, txn.UserID, txn.SourceWalletID); err != nil {
			return err
		}
		if err := s.checkWalletOwned(ctx, txn.UserID, txn.DestinationWalletID); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, txn.Type)
	}

	return nil
}

func (s *transactionService) validateAffectedPair(ctx context.Context, userID string, walletIDs []string) error {
	if len(walletIDs) != 2 || walletIDs[0] == walletIDs[1] {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAffectedPairRequired)
	}

	types := make(map[domain.WalletType]int, 2)
	for _, id := range walletIDs {
		wallet, err := s.walletRepo.FindWalletByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: wallet %s not found", apperrors.ErrValidation, id)
			}
			return fmt.Errorf("failed to validate affected wallet %s: %w", id, err)
		}
		if wallet.UserID != userID {
			return fmt.Errorf("%w: wallet %s", apperrors.ErrForbidden, id)
		}
		types[wallet.WalletType]++
	}

	if types[domain.Physical] != 1 || types[domain.Logical] != 1 {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrAffectedPairRequired)
	}
	return nil
}

func (s *transactionService) checkWalletOwned(ctx context.Context, userID, walletID string) error {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: wallet %s not found", apperrors.ErrValidation, walletID)
		}
		return fmt.Errorf("failed to validate wallet %s: %w", walletID, err)
	}
	if wallet.UserID != userID {
		return fmt.Errorf("%w: wallet %s", apperrors.ErrForbidden, walletID)
	}
	return nil
}

// balanceChangesFor derives the stored-balance deltas a transaction applies
// to the wallets it touches. sign is +1 to apply and -1 to reverse.
func balanceChangesFor(txn *domain.Transaction, sign int64) portsrepo.BalanceChanges {
	amount := txn.Amount.Mul(decimal.NewFromInt(sign))
	changes := make(portsrepo.BalanceChanges)

	switch txn.Type {
	case domain.Income:
		for _, id := range attributedWallets(txn) {
			changes[id] = changes[id].Add(amount)
		}
	case domain.Expense:
		for _, id := range attributedWallets(txn) {
			changes[id] = changes[id].Sub(amount)
		}
	case domain.Transfer:
		changes[txn.SourceWalletID] = changes[txn.SourceWalletID].Sub(amount)
		changes[txn.DestinationWalletID] = changes[txn.DestinationWalletID].Add(amount)
	}
	return changes
}

func attributedWallets(txn *domain.Transaction) []string {
	if len(txn.AffectedWalletIDs) > 0 {
		return txn.AffectedWalletIDs
	}
	if txn.WalletID != "" {
		return []string{txn.WalletID}
	}
	return nil
}

func mergeBalanceChanges(dst, src portsrepo.BalanceChanges) {
	for walletID, delta := range src {
		dst[walletID] = dst[walletID].Add(delta)
	}
}
