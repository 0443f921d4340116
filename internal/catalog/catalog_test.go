package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/catalog"
	"github.com/noah-isme/discount-engine/internal/money"
)

const demoDocument = `{
  "rules": [
    {"name": "flat-100", "type": "fixed", "amount": {"amount": 100, "currency": "EUR"}},
    {"name": "ten-percent", "type": "percentage", "percent": 10},
    {
      "name": "bulk-200",
      "type": "fixed",
      "amount": {"amount": 200, "currency": "EUR"},
      "conditions": [
        {"type": "product_codes", "productCodes": ["BULK001"]},
        {"type": "min_quantity", "minQuantity": 5}
      ]
    }
  ]
}`

func TestParseCompilesRules(t *testing.T) {
	rules, err := catalog.Parse(strings.NewReader(demoDocument))
	require.NoError(t, err)
	require.Len(t, rules, 3)

	item, err := cart.NewItem("BULK001", money.NewFromInt(100, "EUR"), 10)
	require.NoError(t, err)

	amount, ok := rules[0].Amount(item)
	require.True(t, ok)
	require.True(t, amount.Equal(money.NewFromInt(100, "EUR")))

	amount, ok = rules[1].Amount(item)
	require.True(t, ok)
	require.True(t, amount.Equal(money.NewFromInt(100, "EUR")), "10%% of the 1000 EUR line")

	amount, ok = rules[2].Amount(item)
	require.True(t, ok)
	require.True(t, amount.Equal(money.NewFromInt(200, "EUR")))

	small, err := cart.NewItem("BULK001", money.NewFromInt(100, "EUR"), 2)
	require.NoError(t, err)
	_, ok = rules[2].Amount(small)
	require.False(t, ok, "min quantity condition must gate the bulk rule")
}

func TestParseRejectsOutOfRangePercent(t *testing.T) {
	doc := `{"rules": [{"name": "bad", "type": "percentage", "percent": 150}]}`
	_, err := catalog.Parse(strings.NewReader(doc))
	require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
}

func TestParseRejectsMissingParameters(t *testing.T) {
	cases := map[string]string{
		"fixed without amount":       `{"rules": [{"name": "x", "type": "fixed"}]}`,
		"percentage without percent": `{"rules": [{"name": "x", "type": "percentage"}]}`,
		"unknown type":               `{"rules": [{"name": "x", "type": "bogo"}]}`,
		"empty rules":                `{"rules": []}`,
		"unknown field":              `{"rules": [], "extra": true}`,
		"empty product codes":        `{"rules": [{"name": "x", "type": "percentage", "percent": 5, "conditions": [{"type": "product_codes", "productCodes": []}]}]}`,
		"zero min quantity":          `{"rules": [{"name": "x", "type": "percentage", "percent": 5, "conditions": [{"type": "min_quantity"}]}]}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.Parse(strings.NewReader(doc))
			require.ErrorIs(t, err, catalog.ErrInvalidCatalog)
		})
	}
}

func TestFromJSON(t *testing.T) {
	rules, err := catalog.FromJSON(`{"rules": [{"name": "five", "type": "percentage", "percent": 5}]}`)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, "five", rules[0].Name())
}
