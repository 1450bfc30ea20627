package dto

import (
	"time"

	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// RegisterUserRequest defines the structure for creating a new user.
type RegisterUserRequest struct {
	Name                string `json:"name" binding:"required,max=100"`
	Email               string `json:"email" binding:"required,email"`
	Password            string `json:"password" binding:"required,min=8"`
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required,knowncurrency"`
}

// LoginRequest defines the structure for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateDefaultCurrencyRequest changes the currency portfolio totals are shown in.
type UpdateDefaultCurrencyRequest struct {
	DefaultCurrencyCode string `json:"defaultCurrencyCode" binding:"required,knowncurrency"`
}

// UserResponse defines the structure for API responses containing user details.
type UserResponse struct {
	UserID              string    `json:"userID"`
	Name                string    `json:"name"`
	Email               string    `json:"email"`
	DefaultCurrencyCode string    `json:"defaultCurrencyCode"`
	CreatedAt           time.Time `json:"createdAt"`
}

// LoginResponse carries the access token issued on successful authentication.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:              user.UserID,
		Name:                user.Name,
		Email:               user.Email,
		DefaultCurrencyCode: user.DefaultCurrencyCode,
		CreatedAt:           user.CreatedAt,
	}
}
