package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoCurrency indicates that a territory resolved but has no currency in use
// (e.g. Antarctica). It is distinct from ErrNotFound for the territory itself.
var ErrNoCurrency = errors.New("territory has no currency")

// ErrNoCountries indicates that a currency is not used by any known country.
var ErrNoCountries = errors.New("currency is not used by any country")
