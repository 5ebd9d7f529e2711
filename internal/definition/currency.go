package definition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCurrency reports a currency code outside the ISO 4217 set.
var ErrInvalidCurrency = errors.New("invalid currency code")

// DefaultCurrency is used when a tenant declares no base currency.
const DefaultCurrency = "USD"

// Valid currency codes (ISO 4217)
var validCurrencies = map[string]bool{
	"USD": true, "EUR": true, "GBP": true, "JPY": true,
	"CNY": true, "AUD": true, "CAD": true, "CHF": true,
	"SEK": true, "NZD": true, "KRW": true, "SGD": true,
	"NOK": true, "MXN": true, "INR": true, "BRL": true,
	"ZAR": true, "RUB": true, "TRY": true, "HKD": true,
	"CLP": true,
}

// NormalizeCurrency validates a currency code and returns its canonical
// upper-case form. An empty code resolves to DefaultCurrency.
func NormalizeCurrency(currency string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(currency))
	if normalized == "" {
		return DefaultCurrency, nil
	}

	if !validCurrencies[normalized] {
		// Report the code as the caller wrote it.
		return "", fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return normalized, nil
}
