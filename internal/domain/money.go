package domain

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount in minor units plus an ISO 4217 currency code.
// Amounts may be negative: adjustment lines carry signed deltas.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// NewMoney creates a Money value.
func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// NewMoneyFromInt creates a Money value from an integer minor-unit amount.
func NewMoneyFromInt(minorUnits int64, currency string) Money {
	return Money{Amount: decimal.NewFromInt(minorUnits), Currency: currency}
}

// Sub returns m minus other. Both values must carry the same currency;
// callers compare legs with Movement.SameLeg before subtracting.
func (m Money) Sub(other Money) Money {
	return Money{Amount: m.Amount.Sub(other.Amount), Currency: m.Currency}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}
