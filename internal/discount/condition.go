// Package discount implements the cart discount engine: eligibility
// conditions, discount rules, the per-item resolver strategy and the
// cart-wide calculator.
package discount

import (
	"github.com/noah-isme/discount-engine/internal/cart"
)

// Condition is a pure predicate gating a rule's eligibility for a line item.
type Condition interface {
	Eligible(item cart.Item) bool
}

// MinQuantity is eligible when the item quantity reaches the threshold.
type MinQuantity struct {
	Min int
}

// Eligible implements Condition.
func (c MinQuantity) Eligible(item cart.Item) bool {
	return item.Quantity() >= c.Min
}

// ProductCodes is eligible when the item's product code is in the set.
type ProductCodes struct {
	codes map[string]struct{}
}

// NewProductCodes builds a product code membership condition.
func NewProductCodes(codes ...string) ProductCodes {
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return ProductCodes{codes: set}
}

// Eligible implements Condition.
func (c ProductCodes) Eligible(item cart.Item) bool {
	_, ok := c.codes[item.ProductCode()]
	return ok
}

func allEligible(conditions []Condition, item cart.Item) bool {
	for _, c := range conditions {
		if !c.Eligible(item) {
			return false
		}
	}
	return true
}
