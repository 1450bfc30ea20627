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

// currencyRateHandler handles HTTP requests related to conversion rates.
type currencyRateHandler struct {
	rateService portssvc.CurrencyRateSvcFacade
}

func newCurrencyRateHandler(rs portssvc.CurrencyRateSvcFacade) *currencyRateHandler {
	return &currencyRateHandler{rateService: rs}
}

// registerCurrencyRateRoutes registers routes related to conversion rates.
func registerCurrencyRateRoutes(rg *gin.RouterGroup, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.PUT("", h.upsertRate)
		rates.GET("", h.listRates)
		rates.DELETE("/:rateID", h.deleteRate)
		rates.GET("/resolve", h.resolveRate)
	}
}

// upsertRate godoc
// @Summary Create or replace a conversion rate
// @Description Stores a rate in its (from, to, month) slot, replacing any existing value. An empty month targets the default slot.
// @Tags rates
// @Accept json
// @Produce json
// @Param rate body dto.UpsertCurrencyRateRequest true "Rate details"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates [put]
func (h *currencyRateHandler) upsertRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpsertCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	rate, err := h.rateService.UpsertRate(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to upsert rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to save rate"})
		return
	}

	logger.Info("Rate upserted",
		slog.String("from", rate.FromCurrencyCode),
		slog.String("to", rate.ToCurrencyCode),
		slog.String("period", rate.Period.String()))
	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// listRates godoc
// @Summary List conversion rates
// @Description Retrieves all conversion rates maintained by the authenticated user
// @Tags rates
// @Produce json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *currencyRateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	rates, err := h.rateService.ListRates(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// deleteRate godoc
// @Summary Delete a conversion rate
// @Description Removes one of the authenticated user's conversion rates
// @Tags rates
// @Param rateID path string true "Rate ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Rate not found"
// @Security BearerAuth
// @Router /rates/{rateID} [delete]
func (h *currencyRateHandler) deleteRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rateID := c.Param("rateID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.rateService.DeleteRate(c.Request.Context(), userID, rateID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Rate not found", slog.String("rate_id", rateID))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rate not found"})
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Rate belongs to another user"})
		default:
			logger.Error("Failed to delete rate", slog.String("rate_id", rateID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete rate"})
		}
		return
	}

	logger.Info("Rate deleted", slog.String("rate_id", rateID))
	c.Status(http.StatusNoContent)
}

// resolveRate godoc
// @Summary Resolve a conversion factor
// @Description Resolves the effective conversion factor for a currency pair from the user's stored rates, preferring a monthly rate over the default and falling back to a single-row inverse.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param month query string false "Calendar month (YYYY-MM); omitted means the default rate"
// @Success 200 {object} dto.ResolveRateResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "No usable rate for the pair"
// @Security BearerAuth
// @Router /rates/resolve [get]
func (h *currencyRateHandler) resolveRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fromCode := c.Query("from")
	toCode := c.Query("to")
	if fromCode == "" || toCode == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameters 'from' and 'to' are required"})
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

	factor, err := h.rateService.ResolveConversionFactor(c.Request.Context(), userID, fromCode, toCode, period)
	if err != nil {
		var rateErr *accounting.RateUnavailableError
		if errors.As(err, &rateErr) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: rateErr.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to resolve conversion factor", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to resolve conversion factor"})
		return
	}

	c.JSON(http.StatusOK, dto.ResolveRateResponse{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Period:           period.String(),
		Factor:           factor,
	})
}
