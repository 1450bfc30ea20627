package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the shape of a financial event.
type TransactionType string

const (
	Income   TransactionType = "INCOME"
	Expense  TransactionType = "EXPENSE"
	Transfer TransactionType = "TRANSFER"
)

// Transaction represents an immutable financial event.
//
// Which wallets a transaction touches depends on its type:
//   - Income/Expense under the current model list exactly two wallet IDs in
//     AffectedWalletIDs (one physical, one logical). Legacy records may have
//     an empty affected set, in which case WalletID is the fallback.
//   - Transfer uses SourceWalletID and DestinationWalletID exclusively;
//     AffectedWalletIDs and WalletID are unused.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	UserID        string          `json:"userID"`
	Type          TransactionType `json:"type"`
	// Amount is a non-negative magnitude. Sign/direction is derived from Type
	// and wallet role, never stored as a signed value.
	Amount              decimal.Decimal `json:"amount"`
	WalletID            string          `json:"walletID,omitempty"` // Legacy single-wallet reference
	AffectedWalletIDs   []string        `json:"affectedWalletIDs,omitempty"`
	SourceWalletID      string          `json:"sourceWalletID,omitempty"`
	DestinationWalletID string          `json:"destinationWalletID,omitempty"`
	Tags                []string        `json:"tags,omitempty"`
	// TransactionDate is the user-specified date used for all balance and
	// period calculations, distinct from the record-creation timestamp.
	TransactionDate time.Time `json:"transactionDate"`
	AuditFields
}
