package discount

import (
	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/money"
)

// Strategy selects the raw discount for one item from the catalog. It must
// return a present Money in the item's currency; when nothing applies it
// returns the zero amount, never an error.
type Strategy interface {
	Resolve(item cart.Item, catalog []Rule) (money.Money, error)
}

// Resolver runs a strategy and enforces the one invariant no strategy may
// break: a discount never exceeds the item's total price. The cap lives here,
// outside the strategy, so swapping strategies cannot bypass it.
type Resolver struct {
	strategy Strategy
}

// NewResolver wraps a strategy. A nil strategy defaults to BestDiscount.
func NewResolver(strategy Strategy) Resolver {
	if strategy == nil {
		strategy = BestDiscount{}
	}
	return Resolver{strategy: strategy}
}

// Discount returns the capped discount for the item.
func (r Resolver) Discount(item cart.Item, catalog []Rule) (money.Money, error) {
	raw, err := r.strategy.Resolve(item, catalog)
	if err != nil {
		return money.Money{}, err
	}
	total := item.TotalPrice()
	over, err := raw.GreaterThan(total)
	if err != nil {
		return money.Money{}, err
	}
	if over {
		return total, nil
	}
	return raw, nil
}

// BestDiscount picks the maximum present amount among all rules. Ties keep
// the earliest rule in catalog order, making the result deterministic. When
// no rule yields an amount the item gets zero in its own currency.
type BestDiscount struct{}

// Resolve implements Strategy.
func (BestDiscount) Resolve(item cart.Item, catalog []Rule) (money.Money, error) {
	best := money.Zero(item.UnitPrice().Currency())
	for _, rule := range catalog {
		amount, ok := rule.Amount(item)
		if !ok {
			continue
		}
		// Present amounts always match the item currency, so the
		// comparison cannot fail.
		better, err := amount.GreaterThan(best)
		if err != nil {
			return money.Money{}, err
		}
		if better {
			best = amount
		}
	}
	return best, nil
}

// FirstMatch picks the first present amount in catalog order. Useful when the
// catalog itself encodes priority.
type FirstMatch struct{}

// Resolve implements Strategy.
func (FirstMatch) Resolve(item cart.Item, catalog []Rule) (money.Money, error) {
	for _, rule := range catalog {
		if amount, ok := rule.Amount(item); ok {
			return amount, nil
		}
	}
	return money.Zero(item.UnitPrice().Currency()), nil
}
