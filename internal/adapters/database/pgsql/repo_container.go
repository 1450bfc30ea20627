package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of PostgreSQL-backed repositories
// over one shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:        NewUserRepository(pool),
		WalletRepo:      NewWalletRepository(pool),
		TransactionRepo: NewTransactionRepository(pool),
		RateRepo:        NewCurrencyRateRepository(pool),
	}
}
