package services_test

import (
	"context"
	"fmt"
	"sort"

	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	portssvc "github.com/skogge/CountryCurrencyPicker/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

type fakeRegion struct {
	name     string
	german   string
	currency string
}

type fakeCurrency struct {
	name   string
	symbol string
	digits int
}

// fakeLocaleDB is a small, deterministic stand-in for the CLDR tables.
type fakeLocaleDB struct {
	regions    map[string]fakeRegion
	currencies map[string]fakeCurrency
	isoCodes   []string
}

func newFakeLocaleDB() *fakeLocaleDB {
	db := &fakeLocaleDB{
		regions: map[string]fakeRegion{
			"US": {name: "United States", german: "Vereinigte Staaten", currency: "USD"},
			"DE": {name: "Germany", german: "Deutschland", currency: "EUR"},
			"FR": {name: "France", german: "Frankreich", currency: "EUR"},
			"AT": {name: "Austria", german: "Österreich", currency: "EUR"},
			"AX": {name: "Åland Islands", currency: "EUR"},
			"CH": {name: "Switzerland", german: "Schweiz", currency: "CHF"},
			"LI": {name: "Liechtenstein", currency: "CHF"},
			"JP": {name: "Japan", currency: "JPY"},
			"CW": {name: "Curaçao", currency: "ANG"},
			"AQ": {name: "Antarctica"},
		},
		currencies: map[string]fakeCurrency{
			"USD": {name: "US Dollar", symbol: "$", digits: 2},
			"EUR": {name: "Euro", symbol: "€", digits: 2},
			"CHF": {name: "Swiss Franc", symbol: "CHF", digits: 2},
			"JPY": {name: "Japanese Yen", symbol: "¥", digits: 0},
			"ANG": {name: "Netherlands Antillean Guilder", symbol: "NAf.", digits: 2},
			"XAU": {name: "Gold", symbol: "XAU", digits: 2},
		},
	}
	for code := range db.regions {
		db.isoCodes = append(db.isoCodes, code)
	}
	sort.Strings(db.isoCodes)
	return db
}

func (f *fakeLocaleDB) ISOCountries() []string {
	return append([]string(nil), f.isoCodes...)
}

func (f *fakeLocaleDB) AvailableLocales() []language.Tag {
	tags := []language.Tag{language.English, language.German}
	for _, code := range f.isoCodes {
		region, err := language.ParseRegion(code)
		if err != nil {
			continue
		}
		tag, err := language.Compose(region)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

func (f *fakeLocaleDB) RegionName(code string, in language.Tag) (string, bool) {
	region, ok := f.regions[code]
	if !ok {
		return "", false
	}
	if base, _ := in.Base(); base.String() == "de" && region.german != "" {
		return region.german, true
	}
	return region.name, true
}

func (f *fakeLocaleDB) RegionCurrency(code string) (currency.Unit, error) {
	region, ok := f.regions[code]
	if !ok {
		return currency.Unit{}, fmt.Errorf("region %q: %w", code, apperrors.ErrNotFound)
	}
	if region.currency == "" {
		return currency.Unit{}, fmt.Errorf("region %q: %w", code, apperrors.ErrNoCurrency)
	}
	return currency.MustParseISO(region.currency), nil
}

func (f *fakeLocaleDB) CurrencyUnit(code string) (currency.Unit, bool) {
	if _, ok := f.currencies[code]; !ok {
		return currency.Unit{}, false
	}
	return currency.MustParseISO(code), true
}

func (f *fakeLocaleDB) CurrencyName(unit currency.Unit, in language.Tag) (string, bool) {
	cur, ok := f.currencies[unit.String()]
	return cur.name, ok && cur.name != ""
}

func (f *fakeLocaleDB) CurrencySymbol(unit currency.Unit, in language.Tag) string {
	return f.currencies[unit.String()].symbol
}

func (f *fakeLocaleDB) CurrencyDigits(unit currency.Unit) int {
	return f.currencies[unit.String()].digits
}

// staticEnumerator returns a fixed currency set.
type staticEnumerator []currency.Unit

func (e staticEnumerator) AllCurrencies() []currency.Unit {
	return append([]currency.Unit(nil), e...)
}

func allFakeCurrencies() staticEnumerator {
	return staticEnumerator{
		currency.MustParseISO("XAU"),
		currency.USD,
		currency.EUR,
		currency.CHF,
		currency.JPY,
		currency.MustParseISO("ANG"),
	}
}

// --- Mock CountryLister ---
type MockCountryLister struct {
	mock.Mock
}

func (m *MockCountryLister) ListAll(ctx context.Context, filter string) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

func (m *MockCountryLister) ListAllWithCurrencies(ctx context.Context, filter string) ([]domain.Country, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Country), args.Error(1)
}

var _ portssvc.CountryListerSvc = (*MockCountryLister)(nil)
