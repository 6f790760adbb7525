package services

import (
	"github.com/skogge/CountryCurrencyPicker/internal/core/ports/platform"
	portssvc "github.com/skogge/CountryCurrencyPicker/internal/core/ports/services"
	"golang.org/x/text/language"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The currency catalog links back to countries through the country catalog and
// owns a fresh CountryCache for the container's lifetime.
func NewServiceContainer(
	db platform.LocaleDatabase,
	icons platform.IconResolver,
	enumerator platform.CurrencyEnumerator,
	displayLocale language.Tag,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Country = NewCountryService(db, icons,
		WithCountryDisplayLocale(displayLocale),
	)

	container.Currency = NewCurrencyService(db, icons, container.Country, enumerator,
		WithCurrencyDisplayLocale(displayLocale),
		WithCountryCache(NewCountryCache()),
	)

	return container
}
