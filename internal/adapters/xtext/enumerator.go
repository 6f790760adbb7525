package xtext

import (
	"fmt"
	"slices"
	"strings"

	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// DirectEnumerator lists currencies straight from the currency tables,
// including non-tender units such as precious metals where a region uses them.
type DirectEnumerator struct{}

var _ platform.CurrencyEnumerator = DirectEnumerator{}

func (DirectEnumerator) AllCurrencies() []currency.Unit {
	seen := make(map[currency.Unit]struct{})
	it := currency.Query(currency.NonTender)
	for it.Next() {
		seen[it.Unit()] = struct{}{}
	}
	return sortedUnits(seen)
}

// LocaleScanEnumerator discovers currencies by resolving the currency of every
// available locale that names a region.
type LocaleScanEnumerator struct {
	db platform.LocaleDatabase
}

var _ platform.CurrencyEnumerator = (*LocaleScanEnumerator)(nil)

// NewLocaleScanEnumerator scans the locales of db.
func NewLocaleScanEnumerator(db platform.LocaleDatabase) *LocaleScanEnumerator {
	return &LocaleScanEnumerator{db: db}
}

func (e *LocaleScanEnumerator) AllCurrencies() []currency.Unit {
	seen := make(map[currency.Unit]struct{})
	for _, tag := range e.db.AvailableLocales() {
		region, confidence := tag.Region()
		if confidence != language.Exact {
			continue
		}
		unit, err := e.db.RegionCurrency(region.String())
		if err != nil {
			// locale without currency
			continue
		}
		seen[unit] = struct{}{}
	}
	return sortedUnits(seen)
}

// NewEnumerator selects a strategy by name: "direct" or "locale-scan".
func NewEnumerator(strategy string, db platform.LocaleDatabase) (platform.CurrencyEnumerator, error) {
	switch strings.ToLower(strategy) {
	case "", "direct":
		return DirectEnumerator{}, nil
	case "locale-scan":
		return NewLocaleScanEnumerator(db), nil
	default:
		return nil, fmt.Errorf("unknown currency enumeration strategy %q", strategy)
	}
}

// sortedUnits flattens a set into a slice ordered by ISO code, so results are
// deterministic across runs.
func sortedUnits(set map[currency.Unit]struct{}) []currency.Unit {
	units := make([]currency.Unit, 0, len(set))
	for unit := range set {
		units = append(units, unit)
	}
	slices.SortFunc(units, func(a, b currency.Unit) int {
		return strings.Compare(a.String(), b.String())
	})
	return units
}
