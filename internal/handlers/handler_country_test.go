package handlers_test

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/skogge/CountryCurrencyPicker/internal/dto"
	"github.com/skogge/CountryCurrencyPicker/internal/parcel"
	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func (suite *HandlerTestSuite) TestListCountries_Success() {
	countries := []domain.Country{*domain.NewCountry("AT", "Austria", "flag_at"), *germany()}
	suite.mockCountryService.On("ListAll", mock.Anything, "").Return(countries, nil).Once()

	w := suite.get("/api/v1/countries", "application/json")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CountryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("AT", body[0].Code)
	suite.Equal("flag_de", body[1].FlagIcon)
	suite.Equal("und-DE", body[1].Locale)
	suite.Nil(body[1].Currency)
}

func (suite *HandlerTestSuite) TestListCountries_WithCurrencyAndFilter() {
	de := germany()
	de.SetCurrency(*euro())
	suite.mockCountryService.On("ListAllWithCurrencies", mock.Anything, "euro").Return([]domain.Country{*de}, nil).Once()

	w := suite.get("/api/v1/countries?withCurrency=true&filter=euro", "")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CountryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Require().NotNil(body[0].Currency)
	suite.Equal("EUR", body[0].Currency.Code)
	suite.mockCountryService.AssertNotCalled(suite.T(), "ListAll", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestListCountries_Msgpack() {
	countries := []domain.Country{*germany()}
	suite.mockCountryService.On("ListAll", mock.Anything, "").Return(countries, nil).Once()

	w := suite.get("/api/v1/countries", parcel.MIMEType)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(parcel.MIMEType, w.Header().Get("Content-Type"))
	decoded, err := parcel.UnmarshalCountries(w.Body.Bytes())
	suite.NoError(err)
	suite.Equal(countries, decoded)
}

func (suite *HandlerTestSuite) TestListCountries_ServiceError() {
	suite.mockCountryService.On("ListAll", mock.Anything, "").Return(nil, fmt.Errorf("boom")).Once()

	w := suite.get("/api/v1/countries", "")

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountry_Success() {
	suite.mockCountryService.On("GetCountry", mock.Anything, "DE").Return(germany(), nil).Once()

	w := suite.get("/api/v1/countries/DE", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CountryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("Germany", body.Name)
}

func (suite *HandlerTestSuite) TestGetCountry_WithCurrency_NoCurrency() {
	suite.mockCountryService.On("GetCountryWithCurrency", mock.Anything, "AQ").
		Return(nil, fmt.Errorf("country AQ: %w", apperrors.ErrNoCurrency)).Once()

	w := suite.get("/api/v1/countries/AQ?withCurrency=true", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountry_NotFound() {
	suite.mockCountryService.On("GetCountry", mock.Anything, "ZZ").
		Return(nil, fmt.Errorf("country ZZ: %w", apperrors.ErrNotFound)).Once()

	w := suite.get("/api/v1/countries/ZZ", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountry_InvalidCode() {
	w := suite.get("/api/v1/countries/D1", "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.get("/api/v1/countries/DEU", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountryByName() {
	suite.mockCountryService.On("GetCountryByName", mock.Anything, "Germany").Return(germany(), nil).Once()

	w := suite.get("/api/v1/countries/by-name?name=Germany", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CountryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("DE", body.Code)
}

func (suite *HandlerTestSuite) TestGetCountryByName_MissingName() {
	w := suite.get("/api/v1/countries/by-name", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestGetCountryCurrency() {
	suite.mockCurrencyService.On("GetCurrency", mock.Anything, "DE").Return(euro(), nil).Once()

	w := suite.get("/api/v1/countries/DE/currency", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("EUR", body.Code)
	suite.Equal(2, body.Digits)
}
