package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	portssvc "github.com/skogge/CountryCurrencyPicker/internal/core/ports/services"
	"github.com/skogge/CountryCurrencyPicker/internal/utils/collection"
	"github.com/skogge/CountryCurrencyPicker/internal/utils/textnorm"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// currencyService implements the CurrencySvcFacade interface
type currencyService struct {
	BaseService
	db         platform.LocaleDatabase
	countries  portssvc.CountryListerSvc
	enumerator platform.CurrencyEnumerator
	normalizer platform.TextNormalizer
	cache      *CountryCache
	builder    currencyBuilder
}

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*currencyService)

// WithCurrencyDisplayLocale sets the locale currency names and symbols are shown in
func WithCurrencyDisplayLocale(tag language.Tag) CurrencyServiceOption {
	return func(s *currencyService) {
		s.builder.display = tag
	}
}

// WithCountryCache shares a countries-with-currency cache with the service
func WithCountryCache(cache *CountryCache) CurrencyServiceOption {
	return func(s *currencyService) {
		s.cache = cache
	}
}

// WithCurrencyNormalizer replaces the sort key normalizer
func WithCurrencyNormalizer(n platform.TextNormalizer) CurrencyServiceOption {
	return func(s *currencyService) {
		s.normalizer = n
	}
}

// NewCurrencyService creates a new currency catalog. countries supplies the
// country list currencies are linked back to; enumerator decides how the full
// currency set is discovered.
func NewCurrencyService(
	db platform.LocaleDatabase,
	icons platform.IconResolver,
	countries portssvc.CountryListerSvc,
	enumerator platform.CurrencyEnumerator,
	options ...CurrencyServiceOption,
) portssvc.CurrencySvcFacade {
	svc := &currencyService{
		db:         db,
		countries:  countries,
		enumerator: enumerator,
		normalizer: textnorm.NewNormalizer(),
		builder:    currencyBuilder{db: db, icons: icons, display: ReferenceLocale},
	}

	for _, option := range options {
		option(svc)
	}
	if svc.cache == nil {
		svc.cache = NewCountryCache()
	}

	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) GetCurrency(ctx context.Context, countryCode string) (*domain.Currency, error) {
	countryCode = normalizeCode(countryCode)
	cur, err := s.builder.fromRegion(countryCode)
	if err != nil {
		return nil, fmt.Errorf("currency of country %q: %w", countryCode, err)
	}
	return cur, nil
}

func (s *currencyService) GetCurrencyByUnit(ctx context.Context, unit currency.Unit) *domain.Currency {
	return s.builder.fromUnit(unit)
}

func (s *currencyService) GetCurrencyWithCountries(ctx context.Context, unit currency.Unit) (*domain.Currency, error) {
	cur := s.GetCurrencyByUnit(ctx, unit)

	countries, err := s.cache.Get(func() ([]domain.Country, error) {
		s.LogDebug(ctx, "Loading countries with currencies")
		return s.countries.ListAllWithCurrencies(ctx, "")
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to load countries with currencies")
		return nil, fmt.Errorf("failed to load countries for currency %s: %w", cur.Code, err)
	}

	found := collection.Filter(countries, func(c domain.Country) bool {
		return c.Currency != nil && c.Currency.Code == cur.Code
	})
	if len(found) == 0 {
		return nil, fmt.Errorf("currency %s: %w", cur.Code, apperrors.ErrNoCountries)
	}

	// detach from the cache: every country gets its own currency copy
	linked := make([]domain.Country, len(found))
	for i, country := range found {
		linked[i] = country
		linked[i].SetCurrency(*country.Currency)
	}
	cur.SetCountries(linked)
	return cur, nil
}

func (s *currencyService) ParseCurrencyCode(ctx context.Context, code string) (currency.Unit, error) {
	code = normalizeCode(code)
	if !isAlphaCode(code, 3) {
		return currency.Unit{}, fmt.Errorf("currency code %q must be 3 letters: %w", code, apperrors.ErrValidation)
	}
	unit, ok := s.db.CurrencyUnit(code)
	if !ok {
		return currency.Unit{}, fmt.Errorf("currency %q: %w", code, apperrors.ErrNotFound)
	}
	return unit, nil
}

func (s *currencyService) GetAllCurrencies(ctx context.Context) []currency.Unit {
	return s.enumerator.AllCurrencies()
}

func (s *currencyService) ListAll(ctx context.Context, filter string) ([]domain.Currency, error) {
	units := s.GetAllCurrencies(ctx)
	list := make([]domain.Currency, 0, len(units))
	for _, unit := range units {
		list = append(list, *s.GetCurrencyByUnit(ctx, unit))
	}

	sortByName(list, currencyName, s.normalizer)

	if filter == "" {
		return list, nil
	}
	return collection.Filter(list, func(c domain.Currency) bool {
		return textnorm.ContainsFold(c.Name, filter) ||
			textnorm.ContainsFold(c.Symbol, filter)
	}), nil
}

func (s *currencyService) ListAllWithCountries(ctx context.Context, filter string) ([]domain.Currency, error) {
	units := s.GetAllCurrencies(ctx)
	list := make([]domain.Currency, 0, len(units))
	for _, unit := range units {
		cur, err := s.GetCurrencyWithCountries(ctx, unit)
		if errors.Is(err, apperrors.ErrNoCountries) {
			s.LogDebug(ctx, "Skipping currency without countries", slog.String("currency_code", unit.String()))
			continue
		}
		if err != nil {
			return nil, err
		}
		list = append(list, *cur)
	}

	sortByName(list, currencyName, s.normalizer)

	if filter == "" {
		return list, nil
	}
	return collection.Filter(list, func(c domain.Currency) bool {
		return textnorm.ContainsFold(c.Name, filter) ||
			textnorm.ContainsFold(c.Symbol, filter) ||
			collection.Contains(c.Countries, func(country domain.Country) bool {
				return textnorm.ContainsFold(country.Name, filter)
			})
	}), nil
}

func currencyName(c domain.Currency) string { return c.Name }

func isAlphaCode(code string, length int) bool {
	if len(code) != length {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
