package platform

import (
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// LocaleDatabase is the read-only locale and currency reference data the
// catalogs are built from.
type LocaleDatabase interface {
	// ISOCountries lists every 2-letter ISO 3166 code known to the database.
	ISOCountries() []string

	// AvailableLocales lists every locale the database has data for, region
	// variants included.
	AvailableLocales() []language.Tag

	// RegionName returns the display name of a region code in the given language.
	RegionName(code string, in language.Tag) (string, bool)

	// RegionCurrency returns the currency in use in a region. It fails with
	// apperrors.ErrNotFound for unknown regions and apperrors.ErrNoCurrency for
	// regions without a currency.
	RegionCurrency(code string) (currency.Unit, error)

	// CurrencyUnit resolves a 3-letter ISO 4217 code.
	CurrencyUnit(code string) (currency.Unit, bool)

	// CurrencyName returns the display name of a currency.
	CurrencyName(unit currency.Unit, in language.Tag) (string, bool)

	// CurrencySymbol returns the symbol of a currency as written in the given language.
	CurrencySymbol(unit currency.Unit, in language.Tag) string

	// CurrencyDigits returns the standard number of fraction digits.
	CurrencyDigits(unit currency.Unit) int
}

// CurrencyEnumerator lists every currency known to the reference data.
type CurrencyEnumerator interface {
	AllCurrencies() []currency.Unit
}

// IconResolver maps a 2 or 3 letter code to an image resource reference.
type IconResolver interface {
	Resolve(code string) domain.Icon
}

// TextNormalizer maps display strings to sort keys.
type TextNormalizer interface {
	Key(s string) string
}
