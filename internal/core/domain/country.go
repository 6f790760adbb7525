package domain

import "golang.org/x/text/language"

// Icon is an opaque reference to a flag image resource (e.g. "flag_us").
type Icon string

// Country represents one ISO 3166 territory.
type Country struct {
	Code      string    `json:"code"`               // e.g., "US"
	Name      string    `json:"name"`               // e.g., "United States"
	FlagIcon  Icon      `json:"flagIcon"`           // e.g., "flag_us"
	Currency  *Currency `json:"currency,omitempty"` // nil for territories without a currency
	LocaleTag string    `json:"locale,omitempty"`   // empty unless set explicitly
}

// NewCountry creates a Country without currency or explicit locale.
func NewCountry(code, name string, flagIcon Icon) *Country {
	return &Country{
		Code:     code,
		Name:     name,
		FlagIcon: flagIcon,
	}
}

// SetCurrency attaches a copy of currency to the country.
func (c *Country) SetCurrency(currency Currency) {
	c.Currency = &currency
}

// Locale returns the explicit locale if one was set, otherwise a region-only
// locale derived from Code ("und-US" for "US").
func (c Country) Locale() language.Tag {
	if c.LocaleTag != "" {
		if tag, err := language.Parse(c.LocaleTag); err == nil {
			return tag
		}
	}
	region, err := language.ParseRegion(c.Code)
	if err != nil {
		return language.Und
	}
	tag, err := language.Compose(region)
	if err != nil {
		return language.Und
	}
	return tag
}
