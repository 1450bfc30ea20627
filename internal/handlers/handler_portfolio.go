package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	"github.com/walletforge/wallet_tracker_backend/internal/core/domain"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
	"github.com/walletforge/wallet_tracker_backend/internal/middleware"
)

// portfolioHandler handles HTTP requests for the portfolio summary.
type portfolioHandler struct {
	portfolioService portssvc.PortfolioSvcFacade
}

func newPortfolioHandler(ps portssvc.PortfolioSvcFacade) *portfolioHandler {
	return &portfolioHandler{portfolioService: ps}
}

// registerPortfolioRoutes registers routes related to the portfolio summary.
func registerPortfolioRoutes(rg *gin.RouterGroup, portfolioService portssvc.PortfolioSvcFacade) {
	h := newPortfolioHandler(portfolioService)

	rg.GET("/portfolio/summary", h.getPortfolioSummary)
}

// getPortfolioSummary godoc
// @Summary Get the portfolio summary
// @Description Recomputes every wallet's balance and converts it into the user's default currency. Wallets without a usable conversion rate are excluded from the totals and listed separately.
// @Tags portfolio
// @Produce json
// @Param month query string false "Calendar month (YYYY-MM) to resolve rates for; omitted means default rates"
// @Success 200 {object} dto.PortfolioSummaryResponse
// @Failure 400 {object} ErrorResponse "Invalid month format"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Transaction history contains invalid data"
// @Security BearerAuth
// @Router /portfolio/summary [get]
func (h *portfolioHandler) getPortfolioSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period := domain.DefaultPeriod()
	if monthStr := c.Query("month"); monthStr != "" {
		parsed, err := domain.MonthPeriod(monthStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid month format, expected YYYY-MM"})
			return
		}
		period = parsed
	}

	summary, err := h.portfolioService.GetPortfolioSummary(c.Request.Context(), userID, period)
	if err != nil {
		var invalidErr *accounting.InvalidTransactionError
		if errors.As(err, &invalidErr) {
			logger.Error("Transaction history contains invalid data",
				slog.String("transaction_id", invalidErr.TransactionID),
				slog.String("reason", invalidErr.Reason))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Transaction history contains invalid data"})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		logger.Error("Failed to compute portfolio summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute portfolio summary"})
		return
	}

	if len(summary.UnresolvedWalletIDs) > 0 {
		logger.Warn("Portfolio summary has unresolved wallets",
			slog.Int("count", len(summary.UnresolvedWalletIDs)))
	}
	c.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}
