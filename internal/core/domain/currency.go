package domain

// Currency represents one ISO 4217 currency.
type Currency struct {
	Code         string    `json:"code"`     // Primary Key (e.g., "USD")
	Name         string    `json:"name"`     // e.g., "US Dollar"
	Symbol       string    `json:"symbol"`   // e.g., "$"
	FlagIcon     Icon      `json:"flagIcon"` // e.g., "flag_usd"
	Digits       int       `json:"digits"`   // standard fraction digits, 2 for USD
	Countries    []Country `json:"countries,omitempty"`
	CountryNames []string  `json:"countryNames,omitempty"`
}

// NewCurrency creates a Currency without attached countries.
func NewCurrency(code, name, symbol string, flagIcon Icon, digits int) *Currency {
	return &Currency{
		Code:     code,
		Name:     name,
		Symbol:   symbol,
		FlagIcon: flagIcon,
		Digits:   digits,
	}
}

// SetCountries attaches countries and rebuilds CountryNames so both lists keep
// the same length and order.
func (c *Currency) SetCountries(countries []Country) {
	if countries == nil {
		c.Countries = nil
		c.CountryNames = nil
		return
	}
	c.Countries = countries
	c.CountryNames = make([]string, len(countries))
	for i, country := range countries {
		c.CountryNames[i] = country.Name
	}
}
