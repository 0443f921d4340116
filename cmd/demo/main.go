// Command demo runs the discount engine against a few illustrative carts and
// logs the outcome of each scenario.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/discount"
	"github.com/noah-isme/discount-engine/internal/money"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	basicDiscounts(logger)
	productSpecific(logger)
	combinedConditions(logger)
	bestSelection(logger)
}

// basicDiscounts pits a fixed amount, a flat percentage and a volume guarded
// fixed amount against each other.
func basicDiscounts(logger zerolog.Logger) {
	catalog := []discount.Rule{
		discount.NewFixedAmount("fixed-100", money.NewFromInt(100, "EUR")),
		discount.NewPercentageOff("ten-percent", money.MustPercentage(10)),
		discount.NewFixedAmount("volume-100", money.NewFromInt(100, "EUR"), discount.MinQuantity{Min: 10}),
	}
	items := []cart.Item{
		mustItem("ITEM001", 500, 1),
		mustItem("ITEM002", 200, 5),
		mustItem("ITEM003", 100, 15),
	}
	run(logger, "basic discount types", catalog, items)
}

// productSpecific grants 20% to premium product codes, 10% to the rest.
func productSpecific(logger zerolog.Logger) {
	catalog := []discount.Rule{
		discount.NewPercentageOff("premium", money.MustPercentage(20),
			discount.NewProductCodes("PREMIUM001", "PREMIUM002")),
		discount.NewPercentageOff("regular", money.MustPercentage(10)),
	}
	items := []cart.Item{
		mustItem("PREMIUM001", 100, 1),
		mustItem("PREMIUM002", 200, 1),
		mustItem("REGULAR001", 100, 1),
	}
	run(logger, "product specific discounts", catalog, items)
}

// combinedConditions requires both a product code and a minimum quantity.
func combinedConditions(logger zerolog.Logger) {
	catalog := []discount.Rule{
		discount.NewFixedAmount("bulk-200", money.NewFromInt(200, "EUR"),
			discount.NewProductCodes("BULK001"), discount.MinQuantity{Min: 5}),
		discount.NewPercentageOff("fallback", money.MustPercentage(10)),
	}
	items := []cart.Item{
		mustItem("BULK001", 100, 10),
		mustItem("BULK001", 100, 3),
		mustItem("OTHER001", 100, 10),
	}
	run(logger, "combined conditions", catalog, items)
}

// bestSelection shows that the largest eligible amount wins per item.
func bestSelection(logger zerolog.Logger) {
	catalog := []discount.Rule{
		discount.NewFixedAmount("fixed-50", money.NewFromInt(50, "EUR")),
		discount.NewPercentageOff("twenty", money.MustPercentage(20)),
		discount.NewPercentageOff("thirty", money.MustPercentage(30)),
	}
	items := []cart.Item{
		mustItem("ITEM001", 100, 1),
		mustItem("ITEM002", 300, 1),
		mustItem("ITEM003", 1000, 1),
	}
	run(logger, "best discount selection", catalog, items)
}

func run(logger zerolog.Logger, name string, catalog []discount.Rule, items []cart.Item) {
	calculator := discount.NewCalculator(catalog, nil)
	for _, item := range items {
		amount, err := calculator.ItemDiscount(item)
		if err != nil {
			logger.Fatal().Err(err).Str("scenario", name).Msg("resolve item discount")
		}
		logger.Info().
			Str("scenario", name).
			Str("product", item.ProductCode()).
			Int("quantity", item.Quantity()).
			Str("line_total", item.TotalPrice().String()).
			Str("discount", amount.String()).
			Msg("item resolved")
	}
	total, err := calculator.TotalDiscount(items)
	if err != nil {
		logger.Fatal().Err(err).Str("scenario", name).Msg("calculate total discount")
	}
	logger.Info().Str("scenario", name).Str("total_discount", total.String()).Msg("scenario done")
}

func mustItem(code string, unitPrice int64, qty int) cart.Item {
	item, err := cart.NewItem(code, money.NewFromInt(unitPrice, "EUR"), qty)
	if err != nil {
		panic(err)
	}
	return item
}
