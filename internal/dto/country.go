package dto

import "github.com/skogge/CountryCurrencyPicker/internal/core/domain"

// CountryCodeURI binds the :code path segment of country routes.
type CountryCodeURI struct {
	Code string `uri:"code" binding:"required,len=2,alpha"`
}

// ListCountriesParams defines query parameters for listing countries.
type ListCountriesParams struct {
	Filter       string `form:"filter" binding:"max=64"`
	WithCurrency bool   `form:"withCurrency,default=false"`
}

// GetCountryParams defines query parameters for a single country.
type GetCountryParams struct {
	WithCurrency bool `form:"withCurrency,default=false"`
}

// CountryByNameParams defines query parameters for the lookup by display name.
type CountryByNameParams struct {
	Name string `form:"name" binding:"required,max=128"`
}

// CountryResponse defines the data returned for a country.
type CountryResponse struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	FlagIcon string            `json:"flagIcon"`
	Locale   string            `json:"locale"`
	Currency *CurrencyResponse `json:"currency,omitempty"`
}

// ToCountryResponse converts a domain.Country to CountryResponse DTO
func ToCountryResponse(c *domain.Country) CountryResponse {
	resp := CountryResponse{
		Code:     c.Code,
		Name:     c.Name,
		FlagIcon: string(c.FlagIcon),
		Locale:   c.Locale().String(),
	}
	if c.Currency != nil {
		cur := ToCurrencyResponse(c.Currency)
		resp.Currency = &cur
	}
	return resp
}

// ToListCountryResponse converts a slice of domain.Country to a slice of CountryResponse DTOs
func ToListCountryResponse(countries []domain.Country) []CountryResponse {
	res := make([]CountryResponse, len(countries))
	for i := range countries {
		res[i] = ToCountryResponse(&countries[i])
	}
	return res
}
