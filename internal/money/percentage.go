package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidRange indicates a numeric value outside its allowed bounds.
var ErrInvalidRange = errors.New("value out of range")

var hundred = decimal.NewFromInt(100)

// Percentage is an immutable ratio between 0 and 100 inclusive.
type Percentage struct {
	value decimal.Decimal
}

// NewPercentage validates and constructs a Percentage.
func NewPercentage(value decimal.Decimal) (Percentage, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percentage{}, fmt.Errorf("%w: percentage must be between 0 and 100, got %s", ErrInvalidRange, value)
	}
	return Percentage{value: value}, nil
}

// MustPercentage constructs a Percentage from a whole number and panics when it
// is out of range. Intended for static rule literals.
func MustPercentage(value int64) Percentage {
	p, err := NewPercentage(decimal.NewFromInt(value))
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the exact percentage value.
func (p Percentage) Value() decimal.Decimal { return p.value }

// String formats the percentage as "<value>%".
func (p Percentage) String() string { return p.value.String() + "%" }
