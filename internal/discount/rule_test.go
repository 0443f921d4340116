package discount

import (
	"testing"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/money"
)

func mustItem(t *testing.T, code string, unitPrice int64, currency string, qty int) cart.Item {
	t.Helper()
	item, err := cart.NewItem(code, money.NewFromInt(unitPrice, currency), qty)
	if err != nil {
		t.Fatalf("build item: %v", err)
	}
	return item
}

func TestUnconditionalRuleAlwaysEligible(t *testing.T) {
	rule := NewFixedAmount("flat", money.NewFromInt(100, "EUR"))
	for _, item := range []cart.Item{
		mustItem(t, "A", 1, "EUR", 1),
		mustItem(t, "B", 9999, "USD", 50),
	} {
		if !rule.Eligible(item) {
			t.Fatalf("rule without conditions must be eligible for %s", item.ProductCode())
		}
	}
}

func TestEligibilityIsConjunction(t *testing.T) {
	rule := NewFixedAmount("bulk", money.NewFromInt(200, "EUR"),
		NewProductCodes("BULK001"), MinQuantity{Min: 5})

	cases := []struct {
		item cart.Item
		want bool
	}{
		{mustItem(t, "BULK001", 100, "EUR", 10), true},
		{mustItem(t, "BULK001", 100, "EUR", 3), false},
		{mustItem(t, "OTHER001", 100, "EUR", 10), false},
	}
	for _, tc := range cases {
		if got := rule.Eligible(tc.item); got != tc.want {
			t.Fatalf("%s qty %d: expected eligible=%v", tc.item.ProductCode(), tc.item.Quantity(), tc.want)
		}
	}
}

func TestMinQuantityBoundary(t *testing.T) {
	cond := MinQuantity{Min: 10}
	if cond.Eligible(mustItem(t, "A", 1, "EUR", 9)) {
		t.Fatal("quantity 9 must not satisfy min 10")
	}
	if !cond.Eligible(mustItem(t, "A", 1, "EUR", 10)) {
		t.Fatal("quantity 10 must satisfy min 10")
	}
}

func TestProductCodesMembership(t *testing.T) {
	cond := NewProductCodes("PREMIUM001", "PREMIUM002")
	if !cond.Eligible(mustItem(t, "PREMIUM002", 1, "EUR", 1)) {
		t.Fatal("expected PREMIUM002 to match")
	}
	if cond.Eligible(mustItem(t, "REGULAR001", 1, "EUR", 1)) {
		t.Fatal("expected REGULAR001 not to match")
	}
}

func TestFixedAmountIndependentOfPriceAndQuantity(t *testing.T) {
	rule := NewFixedAmount("flat", money.NewFromInt(100, "EUR"))
	for _, item := range []cart.Item{
		mustItem(t, "A", 500, "EUR", 1),
		mustItem(t, "B", 7, "EUR", 40),
	} {
		amount, ok := rule.Amount(item)
		if !ok {
			t.Fatalf("expected amount for %s", item.ProductCode())
		}
		if !amount.Equal(money.NewFromInt(100, "EUR")) {
			t.Fatalf("expected 100 EUR, got %s", amount)
		}
	}
}

func TestFixedAmountAbsentOnCurrencyMismatch(t *testing.T) {
	rule := NewFixedAmount("usd-only", money.NewFromInt(100, "USD"))
	if _, ok := rule.Amount(mustItem(t, "A", 500, "EUR", 1)); ok {
		t.Fatal("expected absent amount for mismatched currency")
	}
}

func TestFixedAmountAbsentWhenIneligible(t *testing.T) {
	rule := NewFixedAmount("volume", money.NewFromInt(100, "EUR"), MinQuantity{Min: 10})
	if _, ok := rule.Amount(mustItem(t, "A", 100, "EUR", 2)); ok {
		t.Fatal("expected absent amount for ineligible item")
	}
}

func TestPercentageOffUsesLineTotal(t *testing.T) {
	rule := NewPercentageOff("ten", money.MustPercentage(10))
	amount, ok := rule.Amount(mustItem(t, "A", 100, "EUR", 2))
	if !ok {
		t.Fatal("expected amount")
	}
	if !amount.Equal(money.NewFromInt(20, "EUR")) {
		t.Fatalf("expected 20 EUR, got %s", amount)
	}
}

func TestPercentageOffFollowsItemCurrency(t *testing.T) {
	rule := NewPercentageOff("ten", money.MustPercentage(10))
	amount, ok := rule.Amount(mustItem(t, "A", 100, "USD", 1))
	if !ok {
		t.Fatal("expected amount")
	}
	if amount.Currency() != "USD" {
		t.Fatalf("expected USD, got %s", amount.Currency())
	}
}

func TestZeroPercentIsPresent(t *testing.T) {
	rule := NewPercentageOff("zero", money.MustPercentage(0))
	amount, ok := rule.Amount(mustItem(t, "A", 100, "EUR", 1))
	if !ok {
		t.Fatal("a zero valued discount is still present")
	}
	if !amount.IsZero() {
		t.Fatalf("expected zero amount, got %s", amount)
	}
}
