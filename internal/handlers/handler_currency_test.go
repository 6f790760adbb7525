package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/skogge/CountryCurrencyPicker/internal/dto"
	"github.com/skogge/CountryCurrencyPicker/internal/parcel"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/currency"
)

func (suite *HandlerTestSuite) TestListCurrencies_Success() {
	list := []domain.Currency{*euro(), *domain.NewCurrency("USD", "US Dollar", "$", "flag_usd", 2)}
	suite.mockCurrencyService.On("ListAll", mock.Anything, "").Return(list, nil).Once()

	w := suite.get("/api/v1/currencies", "")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("Euro", body[0].Name)
	suite.Nil(body[0].Countries)
}

func (suite *HandlerTestSuite) TestListCurrencies_WithCountries() {
	eur := euro()
	de := germany()
	de.SetCurrency(*euro())
	eur.SetCountries([]domain.Country{*de})
	suite.mockCurrencyService.On("ListAllWithCountries", mock.Anything, "germ").Return([]domain.Currency{*eur}, nil).Once()

	w := suite.get("/api/v1/currencies?withCountries=true&filter=germ", "")

	suite.Equal(http.StatusOK, w.Code)
	var body []dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Require().Len(body, 1)
	suite.Equal([]string{"Germany"}, body[0].CountryNames)
	suite.Require().Len(body[0].Countries, 1)
	suite.Equal("DE", body[0].Countries[0].Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_Success() {
	unit := currency.EUR
	suite.mockCurrencyService.On("ParseCurrencyCode", mock.Anything, "eur").Return(unit, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyByUnit", mock.Anything, unit).Return(euro()).Once()

	w := suite.get("/api/v1/currencies/eur", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.CurrencyResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("EUR", body.Code)
	suite.Equal("€", body.Symbol)
}

func (suite *HandlerTestSuite) TestGetCurrency_WithCountriesMsgpack() {
	unit := currency.EUR
	eur := euro()
	eur.SetCountries([]domain.Country{*germany()})
	suite.mockCurrencyService.On("ParseCurrencyCode", mock.Anything, "EUR").Return(unit, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyWithCountries", mock.Anything, unit).Return(eur, nil).Once()

	w := suite.get("/api/v1/currencies/EUR?withCountries=true", parcel.MIMEType)

	suite.Equal(http.StatusOK, w.Code)
	decoded, err := parcel.UnmarshalCurrency(w.Body.Bytes())
	suite.NoError(err)
	suite.Equal(eur, decoded)
}

func (suite *HandlerTestSuite) TestGetCurrency_NoCountries() {
	unit := currency.XAU
	suite.mockCurrencyService.On("ParseCurrencyCode", mock.Anything, "XAU").Return(unit, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyWithCountries", mock.Anything, unit).
		Return(nil, fmt.Errorf("currency XAU: %w", apperrors.ErrNoCountries)).Once()

	w := suite.get("/api/v1/currencies/XAU?withCountries=true", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_UnknownCode() {
	suite.mockCurrencyService.On("ParseCurrencyCode", mock.Anything, "QQQ").
		Return(currency.Unit{}, fmt.Errorf("currency QQQ: %w", apperrors.ErrNotFound)).Once()

	w := suite.get("/api/v1/currencies/QQQ", "")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetCurrency_InvalidCode() {
	w := suite.get("/api/v1/currencies/EU", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestFormatAmount() {
	unit := currency.USD
	suite.mockCurrencyService.On("ParseCurrencyCode", mock.Anything, "USD").Return(unit, nil).Once()
	suite.mockCurrencyService.On("GetCurrencyByUnit", mock.Anything, unit).
		Return(domain.NewCurrency("USD", "US Dollar", "$", "flag_usd", 2)).Once()

	w := suite.get("/api/v1/currencies/USD/format?amount=12.345", "")

	suite.Equal(http.StatusOK, w.Code)
	var body dto.FormattedAmountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("12.35", body.Amount)
	suite.Equal("$12.35", body.Formatted)
}

func (suite *HandlerTestSuite) TestFormatAmount_InvalidAmount() {
	w := suite.get("/api/v1/currencies/USD/format?amount=abc", "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.get("/api/v1/currencies/USD/format", "")
	suite.Equal(http.StatusBadRequest, w.Code)
}
