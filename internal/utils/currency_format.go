package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/skogge/CountryCurrencyPicker/internal/apperrors"
	"github.com/skogge/CountryCurrencyPicker/internal/core/domain"
)

// FormatWithCurrencyPrecision formats an amount with the fraction digits of a given currency
// Example: amount 12.3456 with USD (2 digits) returns "12.35"
// Example: amount 12.3 with USD (2 digits) returns "12.30"
// Example: amount 12.3456 with JPY (0 digits) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Digits)
}

// FormatWithPrecision formats an amount with the given number of fraction digits
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatWithSymbol prefixes the precision-formatted amount with the currency symbol.
// Negative amounts keep the sign in front of the symbol: "-$3.50".
func FormatWithSymbol(amount decimal.Decimal, currency domain.Currency) string {
	if amount.IsNegative() {
		return "-" + currency.Symbol + FormatWithCurrencyPrecision(amount.Neg(), currency)
	}
	return currency.Symbol + FormatWithCurrencyPrecision(amount, currency)
}

// ParseAmount parses a decimal amount supplied by a client.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, apperrors.ErrValidation)
	}
	return amount, nil
}
