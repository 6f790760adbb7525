package dto

import "github.com/skogge/CountryCurrencyPicker/internal/core/domain"

// CurrencyCodeURI binds the :code path segment of currency routes.
type CurrencyCodeURI struct {
	Code string `uri:"code" binding:"required,len=3,alpha"`
}

// ListCurrenciesParams defines query parameters for listing currencies.
type ListCurrenciesParams struct {
	Filter        string `form:"filter" binding:"max=64"`
	WithCountries bool   `form:"withCountries,default=false"`
}

// GetCurrencyParams defines query parameters for a single currency.
type GetCurrencyParams struct {
	WithCountries bool `form:"withCountries,default=false"`
}

// FormatAmountParams defines query parameters for amount formatting.
type FormatAmountParams struct {
	Amount string `form:"amount" binding:"required,numeric"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code         string            `json:"code"`
	Name         string            `json:"name"` // English regardless of the display locale
	Symbol       string            `json:"symbol"`
	FlagIcon     string            `json:"flagIcon"`
	Digits       int               `json:"digits"`
	Countries    []CountryResponse `json:"countries,omitempty"`
	CountryNames []string          `json:"countryNames,omitempty"`
}

// FormattedAmountResponse defines the data returned for a formatted amount.
type FormattedAmountResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Amount       string `json:"amount"`    // rounded to the currency's digits
	Formatted    string `json:"formatted"` // with symbol, e.g. "$12.50"
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	resp := CurrencyResponse{
		Code:         c.Code,
		Name:         c.Name,
		Symbol:       c.Symbol,
		FlagIcon:     string(c.FlagIcon),
		Digits:       c.Digits,
		CountryNames: c.CountryNames,
	}
	if c.Countries != nil {
		resp.Countries = ToListCountryResponse(c.Countries)
	}
	return resp
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
