// Package cart holds the line item model used by the discount engine.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/discount-engine/internal/money"
)

// ErrInvalidItem is returned when a line item fails validation.
var ErrInvalidItem = errors.New("invalid cart item")

// Item is an immutable cart line: a product code, its unit price and a
// positive quantity. The life of an Item is one calculation call.
type Item struct {
	productCode string
	unitPrice   money.Money
	quantity    int
}

// NewItem validates and constructs a line item.
func NewItem(productCode string, unitPrice money.Money, quantity int) (Item, error) {
	code := strings.TrimSpace(productCode)
	if code == "" {
		return Item{}, fmt.Errorf("%w: product code is required", ErrInvalidItem)
	}
	if quantity < 1 {
		return Item{}, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidItem, quantity)
	}
	return Item{productCode: code, unitPrice: unitPrice, quantity: quantity}, nil
}

// ProductCode returns the product code.
func (i Item) ProductCode() string { return i.productCode }

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() money.Money { return i.unitPrice }

// Quantity returns the number of units.
func (i Item) Quantity() int { return i.quantity }

// TotalPrice returns unit price times quantity, in the unit price currency.
func (i Item) TotalPrice() money.Money {
	return i.unitPrice.Mul(i.quantity)
}
