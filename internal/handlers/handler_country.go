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
)

// countryHandler handles HTTP requests related to countries.
type countryHandler struct {
	countryService  portssvc.CountrySvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

// newCountryHandler creates a new countryHandler.
func newCountryHandler(cs portssvc.CountrySvcFacade, curs portssvc.CurrencyReaderSvc) *countryHandler {
	return &countryHandler{
		countryService:  cs,
		currencyService: curs,
	}
}

// registerCountryRoutes registers routes related to countries.
func registerCountryRoutes(rg *gin.RouterGroup, countryService portssvc.CountrySvcFacade, currencyService portssvc.CurrencyReaderSvc) {
	h := newCountryHandler(countryService, currencyService)

	countries := rg.Group("/countries")
	{
		countries.GET("", h.listCountries)
		countries.GET("/by-name", h.getCountryByName)
		countries.GET("/:code", h.getCountry)
		countries.GET("/:code/currency", h.getCountryCurrency)
	}
}

// listCountries godoc
// @Summary List countries
// @Description Lists every country sorted by display name, optionally only those with a currency
// @Tags countries
// @Produce  json
// @Produce  application/x-msgpack
// @Param   filter query string false "Case-insensitive substring of the name (or currency name/symbol with withCurrency)"
// @Param   withCurrency query bool false "Attach currencies and drop countries without one"
// @Success 200 {array} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list countries"
// @Router /countries [get]
func (h *countryHandler) listCountries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCountriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCountries", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	var (
		countries []domain.Country
		err       error
	)
	if params.WithCurrency {
		countries, err = h.countryService.ListAllWithCurrencies(c.Request.Context(), params.Filter)
	} else {
		countries, err = h.countryService.ListAll(c.Request.Context(), params.Filter)
	}
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list countries")
		return
	}

	logger.Info("Countries listed successfully", slog.Int("count", len(countries)), slog.Bool("with_currency", params.WithCurrency))
	respond(c, logger, dto.ToListCountryResponse(countries), func() ([]byte, error) {
		return parcel.MarshalCountries(countries)
	})
}

// getCountryByName godoc
// @Summary Find a country by name
// @Description Finds the country whose US English display name matches exactly
// @Tags countries
// @Produce  json
// @Produce  application/x-msgpack
// @Param   name query string true "US English display name, e.g. Germany"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Missing name"
// @Failure 404 {object} map[string]string "Country not found"
// @Router /countries/by-name [get]
func (h *countryHandler) getCountryByName(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.CountryByNameParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for GetCountryByName", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	country, err := h.countryService.GetCountryByName(c.Request.Context(), params.Name)
	if err != nil {
		writeServiceError(c, logger.With(slog.String("country_name", params.Name)), err, "Failed to find country")
		return
	}

	respond(c, logger, dto.ToCountryResponse(country), func() ([]byte, error) {
		return parcel.MarshalCountry(country)
	})
}

// getCountry godoc
// @Summary Get a country by code
// @Description Retrieves a country by its 2-letter ISO 3166 code
// @Tags countries
// @Produce  json
// @Produce  application/x-msgpack
// @Param   code path string true "Country code (2 letters)" MinLength(2) MaxLength(2)
// @Param   withCurrency query bool false "Attach the country's currency"
// @Success 200 {object} dto.CountryResponse
// @Failure 400 {object} map[string]string "Invalid country code"
// @Failure 404 {object} map[string]string "Country or currency not found"
// @Router /countries/{code} [get]
func (h *countryHandler) getCountry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.CountryCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Country code must be 2 letters"})
		return
	}
	var params dto.GetCountryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("country_code", uri.Code))

	var (
		country *domain.Country
		err     error
	)
	if params.WithCurrency {
		country, err = h.countryService.GetCountryWithCurrency(c.Request.Context(), uri.Code)
	} else {
		country, err = h.countryService.GetCountry(c.Request.Context(), uri.Code)
	}
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve country")
		return
	}

	respond(c, logger, dto.ToCountryResponse(country), func() ([]byte, error) {
		return parcel.MarshalCountry(country)
	})
}

// getCountryCurrency godoc
// @Summary Get the currency of a country
// @Description Retrieves the currency used in the country with the given code
// @Tags countries
// @Produce  json
// @Produce  application/x-msgpack
// @Param   code path string true "Country code (2 letters)" MinLength(2) MaxLength(2)
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string "Invalid country code"
// @Failure 404 {object} map[string]string "Country not found or without currency"
// @Router /countries/{code}/currency [get]
func (h *countryHandler) getCountryCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var uri dto.CountryCodeURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Country code must be 2 letters"})
		return
	}

	logger = logger.With(slog.String("country_code", uri.Code))

	cur, err := h.currencyService.GetCurrency(c.Request.Context(), uri.Code)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve currency")
		return
	}

	respond(c, logger, dto.ToCurrencyResponse(cur), func() ([]byte, error) {
		return parcel.MarshalCurrency(cur)
	})
}
