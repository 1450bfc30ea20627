package services

// ServiceContainer holds every service facade for dependency injection into
// the handler layer.
type ServiceContainer struct {
	User        UserSvcFacade
	Wallet      WalletSvcFacade
	Transaction TransactionSvcFacade
	Rate        CurrencyRateSvcFacade
	Portfolio   PortfolioSvcFacade
	Currency    CurrencySvcFacade
}
