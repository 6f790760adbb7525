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
	"golang.org/x/text/language"
)

// ReferenceLocale is the locale country names are matched in by GetCountryByName,
// independent of the display locale.
var ReferenceLocale = language.AmericanEnglish

// countryService implements the CountrySvcFacade interface
type countryService struct {
	BaseService
	db         platform.LocaleDatabase
	icons      platform.IconResolver
	normalizer platform.TextNormalizer
	currencies currencyBuilder
	display    language.Tag
	reference  language.Tag
}

// CountryServiceOption is a functional option for configuring the country service
type CountryServiceOption func(*countryService)

// WithCountryDisplayLocale sets the locale country and currency names are shown in
func WithCountryDisplayLocale(tag language.Tag) CountryServiceOption {
	return func(s *countryService) {
		s.display = tag
	}
}

// WithReferenceLocale overrides the locale used by GetCountryByName
func WithReferenceLocale(tag language.Tag) CountryServiceOption {
	return func(s *countryService) {
		s.reference = tag
	}
}

// WithCountryNormalizer replaces the sort key normalizer
func WithCountryNormalizer(n platform.TextNormalizer) CountryServiceOption {
	return func(s *countryService) {
		s.normalizer = n
	}
}

// NewCountryService creates a new country catalog with the provided options
func NewCountryService(db platform.LocaleDatabase, icons platform.IconResolver, options ...CountryServiceOption) portssvc.CountrySvcFacade {
	svc := &countryService{
		db:         db,
		icons:      icons,
		normalizer: textnorm.NewNormalizer(),
		display:    ReferenceLocale,
		reference:  ReferenceLocale,
	}

	for _, option := range options {
		option(svc)
	}
	svc.currencies = currencyBuilder{db: db, icons: icons, display: svc.display}

	return svc
}

var _ portssvc.CountrySvcFacade = (*countryService)(nil)

func (s *countryService) GetCountry(ctx context.Context, code string) (*domain.Country, error) {
	code = normalizeCode(code)
	name, ok := s.db.RegionName(code, s.display)
	if !ok {
		return nil, fmt.Errorf("country %q: %w", code, apperrors.ErrNotFound)
	}
	return domain.NewCountry(code, name, s.icons.Resolve(code)), nil
}

func (s *countryService) GetCountryByName(ctx context.Context, name string) (*domain.Country, error) {
	locale, found := collection.First(s.db.AvailableLocales(), func(tag language.Tag) bool {
		region, confidence := tag.Region()
		if confidence != language.Exact {
			return false
		}
		displayName, ok := s.db.RegionName(region.String(), s.reference)
		return ok && displayName == name
	})
	if !found {
		return nil, fmt.Errorf("country named %q: %w", name, apperrors.ErrNotFound)
	}

	region, _ := locale.Region()
	return s.GetCountry(ctx, region.String())
}

func (s *countryService) GetCountryWithCurrency(ctx context.Context, code string) (*domain.Country, error) {
	country, err := s.GetCountry(ctx, code)
	if err != nil {
		return nil, err
	}

	currency, err := s.currencies.fromRegion(country.Code)
	if err != nil {
		return nil, fmt.Errorf("currency of country %q: %w", country.Code, err)
	}
	country.SetCurrency(*currency)
	return country, nil
}

func (s *countryService) ListAll(ctx context.Context, filter string) ([]domain.Country, error) {
	codes := s.db.ISOCountries()
	list := make([]domain.Country, 0, len(codes))

	for _, code := range codes {
		country, err := s.GetCountry(ctx, code)
		if err != nil {
			// ISO codes are expected to resolve; keep the entry under its code.
			s.LogWarn(ctx, "ISO country code did not resolve", slog.String("country_code", code))
			country = domain.NewCountry(code, code, s.icons.Resolve(code))
		}
		list = append(list, *country)
	}

	sortByName(list, countryName, s.normalizer)

	if filter == "" {
		return list, nil
	}
	return collection.Filter(list, func(c domain.Country) bool {
		return textnorm.ContainsFold(c.Name, filter)
	}), nil
}

func (s *countryService) ListAllWithCurrencies(ctx context.Context, filter string) ([]domain.Country, error) {
	codes := s.db.ISOCountries()
	list := make([]domain.Country, 0, len(codes))

	for _, code := range codes {
		country, err := s.GetCountryWithCurrency(ctx, code)
		switch {
		case err == nil:
			list = append(list, *country)
		case errors.Is(err, apperrors.ErrNoCurrency):
			s.LogDebug(ctx, "Skipping territory without currency", slog.String("country_code", code))
		default:
			s.LogWarn(ctx, "Skipping unresolvable country", slog.String("country_code", code), slog.String("error", err.Error()))
		}
	}

	sortByName(list, countryName, s.normalizer)

	if filter == "" {
		return list, nil
	}
	return collection.Filter(list, func(c domain.Country) bool {
		return textnorm.ContainsFold(c.Name, filter) ||
			textnorm.ContainsFold(c.Currency.Name, filter) ||
			textnorm.ContainsFold(c.Currency.Symbol, filter)
	}), nil
}

func countryName(c domain.Country) string { return c.Name }
