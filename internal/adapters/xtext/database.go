// Package xtext implements the locale database on top of the CLDR data shipped
// with golang.org/x/text.
package xtext

import (
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed iso4217.yaml
var iso4217 []byte

// notCountries are region codes CLDR flags as countries that ISO 3166-1 does
// not assign: groupings and exceptionally reserved codes.
var notCountries = map[string]struct{}{
	"EU": {}, "EZ": {}, "UN": {},
	"AC": {}, "CP": {}, "DG": {}, "EA": {}, "IC": {}, "TA": {},
}

// Database answers locale and currency questions from x/text tables.
// It is immutable after construction and safe for concurrent use.
type Database struct {
	currencyNames map[string]string
	countries     []string
	locales       []language.Tag
}

var _ platform.LocaleDatabase = (*Database)(nil)

// NewDatabase builds the database and precomputes the country and locale lists.
func NewDatabase() (*Database, error) {
	names := make(map[string]string)
	if err := yaml.Unmarshal(iso4217, &names); err != nil {
		return nil, fmt.Errorf("failed to parse currency names: %w", err)
	}

	db := &Database{currencyNames: names}
	db.countries = isoCountries()
	db.locales = availableLocales(db.countries)
	return db, nil
}

// isoCountries lists the current 2-letter country codes CLDR has a name for.
func isoCountries() []string {
	namer := display.English.Regions()
	var codes []string
	for _, r := range language.Supported.Regions() {
		code := r.String()
		if _, ok := parseCountry(code); !ok || r.IsPrivateUse() {
			continue
		}
		// deprecated codes canonicalize to their successor
		if r.Canonicalize() != r {
			continue
		}
		if namer.Name(r) == "" {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return slices.Compact(codes)
}

// availableLocales returns the display languages plus one region-only locale
// per country, so every country is reachable through a locale.
func availableLocales(countries []string) []language.Tag {
	tags := slices.Clone(display.Supported.Tags())
	for _, code := range countries {
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

func (d *Database) ISOCountries() []string {
	return slices.Clone(d.countries)
}

func (d *Database) AvailableLocales() []language.Tag {
	return slices.Clone(d.locales)
}

func (d *Database) RegionName(code string, in language.Tag) (string, bool) {
	region, ok := parseCountry(code)
	if !ok {
		return "", false
	}
	namer := display.Regions(in)
	if namer == nil {
		namer = display.English.Regions()
	}
	name := namer.Name(region)
	if name == "" {
		name = display.English.Regions().Name(region)
	}
	return name, name != ""
}

func (d *Database) RegionCurrency(code string) (currency.Unit, error) {
	region, ok := parseCountry(code)
	if !ok {
		return currency.Unit{}, fmt.Errorf("region %q: %w", code, apperrors.ErrNotFound)
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return currency.Unit{}, fmt.Errorf("region %q: %w", code, apperrors.ErrNoCurrency)
	}
	return unit, nil
}

func (d *Database) CurrencyUnit(code string) (currency.Unit, bool) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return currency.Unit{}, false
	}
	return unit, true
}

// CurrencyName returns the English name; the table carries no translations.
func (d *Database) CurrencyName(unit currency.Unit, in language.Tag) (string, bool) {
	name, ok := d.currencyNames[unit.String()]
	return name, ok
}

func (d *Database) CurrencySymbol(unit currency.Unit, in language.Tag) string {
	return message.NewPrinter(in).Sprint(currency.Symbol(unit))
}

func (d *Database) CurrencyDigits(unit currency.Unit) int {
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// parseCountry accepts 2-letter codes of assigned ISO 3166-1 countries only;
// groupings such as "EU" or "UN" and reserved codes such as "AC" are rejected.
func parseCountry(code string) (language.Region, bool) {
	if len(code) != 2 {
		return language.Region{}, false
	}
	if _, ok := notCountries[strings.ToUpper(code)]; ok {
		return language.Region{}, false
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return language.Region{}, false
	}
	return region, true
}
