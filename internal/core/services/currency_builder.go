package services

import (
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// currencyBuilder turns reference data into domain currencies. Both catalogs
// share it so the country catalog never depends on the currency service.
type currencyBuilder struct {
	db      platform.LocaleDatabase
	icons   platform.IconResolver
	display language.Tag
}

func (b currencyBuilder) fromUnit(unit currency.Unit) *domain.Currency {
	code := unit.String()
	name, ok := b.db.CurrencyName(unit, b.display)
	if !ok {
		// no localized name available, show the ISO code instead
		name = code
	}
	return domain.NewCurrency(
		code,
		name,
		b.db.CurrencySymbol(unit, b.display),
		b.icons.Resolve(code),
		b.db.CurrencyDigits(unit),
	)
}

func (b currencyBuilder) fromRegion(countryCode string) (*domain.Currency, error) {
	unit, err := b.db.RegionCurrency(countryCode)
	if err != nil {
		return nil, err
	}
	return b.fromUnit(unit), nil
}
