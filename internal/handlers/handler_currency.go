package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/walletforge/wallet_tracker_backend/internal/apperrors"
	portssvc "github.com/walletforge/wallet_tracker_backend/internal/core/ports/services"
	"github.com/walletforge/wallet_tracker_backend/internal/dto"
	"github.com/walletforge/wallet_tracker_backend/internal/middleware"
)

// currencyHandler handles HTTP requests related to currency metadata.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers routes related to currency metadata.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
	}
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves metadata for a specific currency by its code
// @Tags currencies
// @Produce json
// @Param code path string true "Currency Code"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse "Currency not known"
// @Security BearerAuth
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := strings.ToUpper(c.Param("code"))

	cur, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownCurrency) {
			logger.Warn("Currency not known", slog.String("currency_code", code))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Currency not known"})
			return
		}
		logger.Error("Failed to get currency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve currency"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyResponse(cur))
}

// listCurrencies godoc
// @Summary List all currencies
// @Description Retrieves the full currency metadata table
// @Tags currencies
// @Produce json
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies := h.currencyService.ListCurrencies(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}
