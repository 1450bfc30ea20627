package repositories

// RepositoryProvider bundles every repository facade for injection into the
// service layer.
type RepositoryProvider struct {
	UserRepo        UserRepositoryFacade
	WalletRepo      WalletRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	RateRepo        CurrencyRateRepositoryFacade
}
