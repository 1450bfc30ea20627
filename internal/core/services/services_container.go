package services

import (
	portsrepo "github.com/walletforge/wallet_tracker_backend/internal/core/ports/repositories"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Currency = NewCurrencyService()
	container.Wallet = NewWalletService(
		repos.WalletRepo,
		WithTransactionReader(repos.TransactionRepo),
	)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.WalletRepo)
	container.Rate = NewRateService(repos.RateRepo)
	container.Portfolio = NewPortfolioService(
		repos.UserRepo,
		repos.WalletRepo,
		repos.TransactionRepo,
		repos.RateRepo,
	)

	return container
}
