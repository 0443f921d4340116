package discount

import (
	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/money"
)

// Calculator computes the total discount for a cart against an immutable
// rule catalog. It holds no mutable state, so one instance may be shared by
// concurrent callers.
type Calculator struct {
	catalog  []Rule
	resolver Resolver
}

// NewCalculator builds a calculator over the given catalog. A nil strategy
// defaults to BestDiscount.
func NewCalculator(catalog []Rule, strategy Strategy) *Calculator {
	return &Calculator{catalog: catalog, resolver: NewResolver(strategy)}
}

// Rules returns the number of rules in the catalog.
func (c *Calculator) Rules() int { return len(c.catalog) }

// ItemDiscount resolves the capped discount for a single item.
func (c *Calculator) ItemDiscount(item cart.Item) (money.Money, error) {
	return c.resolver.Discount(item, c.catalog)
}

// TotalDiscount resolves one capped discount per item and sums them. Items
// of mixed currencies cannot be summed and abort with ErrCurrencyMismatch.
// An empty item slice yields the zero Money value: with no items there is no
// currency to report the zero in.
func (c *Calculator) TotalDiscount(items []cart.Item) (money.Money, error) {
	var total money.Money
	for i, item := range items {
		amount, err := c.resolver.Discount(item, c.catalog)
		if err != nil {
			return money.Money{}, err
		}
		if i == 0 {
			total = amount
			continue
		}
		total, err = total.Add(amount)
		if err != nil {
			return money.Money{}, err
		}
	}
	return total, nil
}
