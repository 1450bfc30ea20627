package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/walletforge/wallet_tracker_backend/internal/core/currency"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
)

// RegisterCustomValidators registers the request-level validation tags used
// by the DTO binding annotations.
func RegisterCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Error("Failed to access the gin validator engine; custom validators not registered")
		return
	}

	// knowncurrency: the field must be a currency code present in the
	// metadata table.
	_ = v.RegisterValidation("knowncurrency", func(fl validator.FieldLevel) bool {
		return currency.IsKnown(fl.Field().String())
	})

	// yyyymm: the field must be a calendar month in YYYY-MM form.
	_ = v.RegisterValidation("yyyymm", func(fl validator.FieldLevel) bool {
		_, err := domain.MonthPeriod(fl.Field().String())
		return err == nil
	})
}
