package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	"github.com/walletforge/wallet_tracker_backend/internal/core/accounting"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
	"github.com/walletforge/wallet_tracker_backend/internal/middleware"
)

// walletHandler handles HTTP requests related to wallets.
type walletHandler struct {
	walletService portssvc.WalletSvcFacade
}

func newWalletHandler(ws portssvc.WalletSvcFacade) *walletHandler {
	return &walletHandler{walletService: ws}
}

// registerWalletRoutes registers routes related to wallets.
func registerWalletRoutes(rg *gin.RouterGroup, walletService portssvc.WalletSvcFacade) {
	h := newWalletHandler(walletService)

	wallets := rg.Group("/wallets")
	{
		wallets.POST("", h.createWallet)
		wallets.GET("", h.listWallets)
		wallets.GET("/:walletID", h.getWallet)
		wallets.PUT("/:walletID", h.updateWallet)
		wallets.DELETE("/:walletID", h.deleteWallet)
		wallets.GET("/:walletID/balance", h.getWalletBalance)
	}
}

// createWallet godoc
// @Summary Create a new wallet
// @Description Creates a physical or logical wallet for the authenticated user
// @Tags wallets
// @Accept json
// @Produce json
// @Param wallet body dto.CreateWalletRequest true "Wallet details"
// @Success 201 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [post]
func (h *walletHandler) createWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.CreateWallet(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create wallet", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create wallet"})
		return
	}

	logger.Info("Wallet created", slog.String("wallet_id", wallet.WalletID))
	c.JSON(http.StatusCreated, dto.ToWalletResponse(wallet))
}

// listWallets godoc
// @Summary List wallets
// @Description Retrieves all wallets owned by the authenticated user
// @Tags wallets
// @Produce json
// @Success 200 {array} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /wallets [get]
func (h *walletHandler) listWallets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallets, err := h.walletService.ListWallets(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list wallets", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list wallets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWalletResponse(wallets))
}

// getWallet godoc
// @Summary Get a wallet
// @Description Retrieves one of the authenticated user's wallets by ID
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Wallet belongs to another user"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID} [get]
func (h *walletHandler) getWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), userID, walletID)
	if err != nil {
		h.respondWalletError(c, logger, err, walletID)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// updateWallet godoc
// @Summary Rename a wallet
// @Description Updates a wallet's name. The currency is immutable.
// @Tags wallets
// @Accept json
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Param wallet body dto.UpdateWalletRequest true "Updated wallet details"
// @Success 200 {object} dto.WalletResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID} [put]
func (h *walletHandler) updateWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	wallet, err := h.walletService.UpdateWallet(c.Request.Context(), userID, walletID, req)
	if err != nil {
		h.respondWalletError(c, logger, err, walletID)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletResponse(wallet))
}

// deleteWallet godoc
// @Summary Delete a wallet
// @Description Removes one of the authenticated user's wallets
// @Tags wallets
// @Param walletID path string true "Wallet ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID} [delete]
func (h *walletHandler) deleteWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.walletService.DeleteWallet(c.Request.Context(), userID, walletID); err != nil {
		h.respondWalletError(c, logger, err, walletID)
		return
	}

	logger.Info("Wallet deleted", slog.String("wallet_id", walletID))
	c.Status(http.StatusNoContent)
}

// getWalletBalance godoc
// @Summary Get a wallet balance
// @Description Recomputes the wallet's income, expense and net balance from the full transaction history
// @Tags wallets
// @Produce json
// @Param walletID path string true "Wallet ID"
// @Success 200 {object} dto.WalletBalanceResponse
// @Failure 404 {object} ErrorResponse "Wallet not found"
// @Failure 422 {object} ErrorResponse "Transaction history contains invalid data"
// @Security BearerAuth
// @Router /wallets/{walletID}/balance [get]
func (h *walletHandler) getWalletBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	walletID := c.Param("walletID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	wallet, err := h.walletService.GetWalletByID(c.Request.Context(), userID, walletID)
	if err != nil {
		h.respondWalletError(c, logger, err, walletID)
		return
	}

	balance, err := h.walletService.CalculateWalletBalance(c.Request.Context(), userID, walletID)
	if err != nil {
		var invalidErr *accounting.InvalidTransactionError
		if errors.As(err, &invalidErr) {
			logger.Error("Transaction history contains invalid data",
				slog.String("transaction_id", invalidErr.TransactionID),
				slog.String("reason", invalidErr.Reason))
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Transaction history contains invalid data"})
			return
		}
		h.respondWalletError(c, logger, err, walletID)
		return
	}

	c.JSON(http.StatusOK, dto.ToWalletBalanceResponse(wallet, balance))
}

// respondWalletError maps service errors to HTTP responses shared by the
// wallet endpoints.
func (h *walletHandler) respondWalletError(c *gin.Context, logger *slog.Logger, err error, walletID string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Wallet not found", slog.String("wallet_id", walletID))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Wallet not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Wallet access forbidden", slog.String("wallet_id", walletID))
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Wallet belongs to another user"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error("Wallet operation failed", slog.String("wallet_id", walletID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Wallet operation failed"})
	}
}
