package services

import (
	"context"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user on success.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateDefaultCurrency changes the currency portfolio totals are shown in.
	UpdateDefaultCurrency(ctx context.Context, userID string, req dto.UpdateDefaultCurrencyRequest) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
