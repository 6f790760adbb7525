package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	portssvc "github.com/skogge/CountryCurrencyPicker/internal/core/ports/services"
	"github.com/skogge/CountryCurrencyPicker/internal/dto"
	"github.com/skogge/CountryCurrencyPicker/internal/middleware"
	"github.com/skogge/CountryCurrencyPicker/internal/parcel"
	"github.com/skogge/CountryCurrencyPicker/internal/utils"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:code", h.getCurrencyByCode)
		currencies.GET("/:code/format", h.formatAmount)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Lists every currency sorted by name, optionally with the countries using it.
// @Description Currency names are always English; symbols and country names follow DISPLAY_LOCALE.
// @Tags currencies
// @Produce  json
// @Produce  application/x-msgpack
// @Param   filter query string false "Case-insensitive substring of name or symbol (or country name with withCountries)"
// @Param   withCountries query bool false "Attach countries and drop currencies no country uses"
// @Success 200 {array} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCurrencies", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var (
		currencies []domain.Currency
		err        error
	)
	if params.WithCountries {
		currencies, err = h.currencyService.ListAllWithCountries(c.Request.Context(), params.Filter)
	} else {
		currencies, err = h.currencyService.ListAll(c.Request.Context(), params.Filter)
	}
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list currencies")
		return
	}

	logger.Info("Currencies listed successfully", slog.Int("count", len(currencies)), slog.Bool("with_countries", params.WithCountries))
	respond(c, logger, dto.ToListCurrencyResponse(currencies), func() ([]byte, error) {
		return parcel.MarshalCurrencies(currencies)
	})
}

// getCurrencyByCode godoc
// @Summary Get a currency by code
// @Description Retrieves details for a specific currency by its 3-letter code.
// @Description Currency names are always English; symbols and country names follow DISPLAY_LOCALE.
// @Tags currencies
// @Produce  json
// @Produce  application/x-msgpack
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   withCountries query bool false "Attach the countries using the currency"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "Currency not found or used by no country"
// @Router /currencies/{code} [get]
func (h *currencyHandler) getCurrencyByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.CurrencyCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	var params dto.GetCurrencyParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_code", uri.Code))

	unit, err := h.currencyService.ParseCurrencyCode(c.Request.Context(), uri.Code)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}

	var cur *domain.Currency
	if params.WithCountries {
		cur, err = h.currencyService.GetCurrencyWithCountries(c.Request.Context(), unit)
		if err != nil {
			writeServiceError(c, logger, err, "Failed to retrieve currency")
			return
		}
	} else {
		cur = h.currencyService.GetCurrencyByUnit(c.Request.Context(), unit)
	}

	respond(c, logger, dto.ToCurrencyResponse(cur), func() ([]byte, error) {
		return parcel.MarshalCurrency(cur)
	})
}

// formatAmount godoc
// @Summary Format an amount
// @Description Rounds an amount to the currency's standard fraction digits and prefixes its symbol
// @Tags currencies
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   amount query string true "Decimal amount, e.g. 12.345"
// @Success 200 {object} dto.FormattedAmountResponse
// @Failure 400 {object} map[string]string "Invalid currency code or amount"
// @Failure 404 {object} map[string]string "Currency not found"
// @Router /currencies/{code}/format [get]
func (h *currencyHandler) formatAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.CurrencyCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}
	var params dto.FormatAmountParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("currency_code", uri.Code))

	amount, err := utils.ParseAmount(params.Amount)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to format amount")
		return
	}
	unit, err := h.currencyService.ParseCurrencyCode(c.Request.Context(), uri.Code)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to format amount")
		return
	}
	cur := h.currencyService.GetCurrencyByUnit(c.Request.Context(), unit)

	c.JSON(http.StatusOK, dto.FormattedAmountResponse{
		CurrencyCode: cur.Code,
		Amount:       utils.FormatWithCurrencyPrecision(amount, *cur),
		Formatted:    utils.FormatWithSymbol(amount, *cur),
	})
}
