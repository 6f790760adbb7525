package services

import (
	"context"

	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"golang.org/x/text/currency"
)

// CountryReaderSvc defines single-country lookups
type CountryReaderSvc interface {
	// GetCountry builds the country for a 2-letter region code.
	GetCountry(ctx context.Context, code string) (*domain.Country, error)

	// GetCountryByName finds a country by its English display name.
	GetCountryByName(ctx context.Context, name string) (*domain.Country, error)

	// GetCountryWithCurrency builds the country with its currency attached.
	GetCountryWithCurrency(ctx context.Context, code string) (*domain.Country, error)
}

// CountryListerSvc defines country enumeration
type CountryListerSvc interface {
	// ListAll lists every country sorted by name, optionally filtered by name.
	ListAll(ctx context.Context, filter string) ([]domain.Country, error)

	// ListAllWithCurrencies lists countries that have a currency.
	ListAllWithCurrencies(ctx context.Context, filter string) ([]domain.Country, error)
}

// CountrySvcFacade combines all country catalog interfaces
type CountrySvcFacade interface {
	CountryReaderSvc
	CountryListerSvc
}

// CurrencyReaderSvc defines single-currency lookups
type CurrencyReaderSvc interface {
	// GetCurrency returns the currency used in the region with the given code.
	GetCurrency(ctx context.Context, countryCode string) (*domain.Currency, error)

	// GetCurrencyByUnit builds a currency from an already resolved unit.
	GetCurrencyByUnit(ctx context.Context, unit currency.Unit) *domain.Currency

	// GetCurrencyWithCountries builds a currency with every country using it.
	GetCurrencyWithCountries(ctx context.Context, unit currency.Unit) (*domain.Currency, error)

	// ParseCurrencyCode resolves a 3-letter ISO 4217 code.
	ParseCurrencyCode(ctx context.Context, code string) (currency.Unit, error)

	// GetAllCurrencies returns every currency known to the reference data.
	GetAllCurrencies(ctx context.Context) []currency.Unit
}

// CurrencyListerSvc defines currency enumeration
type CurrencyListerSvc interface {
	// ListAll lists every currency sorted by name, optionally filtered by name or symbol.
	ListAll(ctx context.Context, filter string) ([]domain.Currency, error)

	// ListAllWithCountries lists currencies used by at least one country.
	ListAllWithCountries(ctx context.Context, filter string) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency catalog interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyListerSvc
}
