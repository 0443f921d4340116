package cart

import (
	"errors"
	"testing"

	"github.com/noah-isme/discount-engine/internal/money"
)

func TestNewItemValidation(t *testing.T) {
	price := money.NewFromInt(100, "EUR")

	if _, err := NewItem("ITEM001", price, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewItem("ITEM001", price, 0); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for zero quantity, got %v", err)
	}
	if _, err := NewItem("ITEM001", price, -3); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for negative quantity, got %v", err)
	}
	if _, err := NewItem("  ", price, 1); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem for blank code, got %v", err)
	}
}

func TestTotalPrice(t *testing.T) {
	item, err := NewItem("ITEM001", money.NewFromInt(200, "EUR"), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !item.TotalPrice().Equal(money.NewFromInt(1000, "EUR")) {
		t.Fatalf("expected 1000 EUR, got %s", item.TotalPrice())
	}
}

func TestNewItemTrimsCode(t *testing.T) {
	item, err := NewItem(" ITEM001 ", money.NewFromInt(1, "EUR"), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ProductCode() != "ITEM001" {
		t.Fatalf("expected trimmed code, got %q", item.ProductCode())
	}
}
