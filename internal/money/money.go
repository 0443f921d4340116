// Package money provides the exact-arithmetic value objects the discount
// engine computes with.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch indicates arithmetic between two different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// minorUnitPlaces is the number of decimal places of the minor currency unit.
const minorUnitPlaces = 2

// Money is an immutable monetary value tagged with a currency code.
// Arithmetic is only defined between values of the same currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// New constructs a Money from an exact decimal amount.
func New(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: currency}
}

// NewFromInt constructs a Money from a whole amount of major units.
func NewFromInt(amount int64, currency string) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: currency}
}

// Zero returns the zero amount in the given currency.
func Zero(currency string) Money {
	return Money{amount: decimal.Zero, currency: currency}
}

// Amount returns the exact decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code.
func (m Money) Currency() string { return m.currency }

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Add returns the sum of two amounts of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// GreaterThan reports whether m exceeds other. Currencies must match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if m.currency != other.currency {
		return false, fmt.Errorf("%w: %s vs %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return m.amount.GreaterThan(other.amount), nil
}

// Equal reports value and currency equality.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// Mul scales the amount by a whole quantity.
func (m Money) Mul(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))), currency: m.currency}
}

// Percent returns the given percentage of the amount, rounded half-up to the
// minor currency unit.
func (m Money) Percent(p Percentage) Money {
	amount := m.amount.Mul(p.Value()).Div(decimal.NewFromInt(100)).Round(minorUnitPlaces)
	return Money{amount: amount, currency: m.currency}
}

// String formats the value as "<amount> <currency>".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency
}
