package discount

import (
	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/money"
)

// Rule is a named discount rule. Amount returns the discount for an item and
// whether one applies at all: an absent amount (ineligible item or currency
// mismatch) is distinct from a present zero and is skipped by resolvers.
type Rule interface {
	Name() string
	Eligible(item cart.Item) bool
	Amount(item cart.Item) (money.Money, bool)
}

// FixedAmount discounts a configured amount regardless of item price or
// quantity. It applies only when the item carries the same currency.
type FixedAmount struct {
	name       string
	amount     money.Money
	conditions []Condition
}

// NewFixedAmount constructs a fixed amount rule gated by the given conditions.
func NewFixedAmount(name string, amount money.Money, conditions ...Condition) FixedAmount {
	return FixedAmount{name: name, amount: amount, conditions: conditions}
}

// Name returns the rule name.
func (d FixedAmount) Name() string { return d.name }

// Eligible reports whether the item satisfies every condition. A rule without
// conditions is unconditional.
func (d FixedAmount) Eligible(item cart.Item) bool {
	return allEligible(d.conditions, item)
}

// Amount implements Rule.
func (d FixedAmount) Amount(item cart.Item) (money.Money, bool) {
	if !d.Eligible(item) {
		return money.Money{}, false
	}
	if d.amount.Currency() != item.UnitPrice().Currency() {
		return money.Money{}, false
	}
	return d.amount, true
}

// PercentageOff discounts a percentage of the item's line total, in the
// item's own currency.
type PercentageOff struct {
	name       string
	percentage money.Percentage
	conditions []Condition
}

// NewPercentageOff constructs a percentage rule gated by the given conditions.
func NewPercentageOff(name string, percentage money.Percentage, conditions ...Condition) PercentageOff {
	return PercentageOff{name: name, percentage: percentage, conditions: conditions}
}

// Name returns the rule name.
func (d PercentageOff) Name() string { return d.name }

// Eligible reports whether the item satisfies every condition.
func (d PercentageOff) Eligible(item cart.Item) bool {
	return allEligible(d.conditions, item)
}

// Amount implements Rule. The result is computed in the item's currency, so
// no currency gate is needed here.
func (d PercentageOff) Amount(item cart.Item) (money.Money, bool) {
	if !d.Eligible(item) {
		return money.Money{}, false
	}
	return item.TotalPrice().Percent(d.percentage), true
}
