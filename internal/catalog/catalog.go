// Package catalog loads the declarative discount rule catalog that the
// service is configured with and compiles it into engine rules.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/discount"
	"github.com/noah-isme/discount-engine/internal/money"
)

// ErrInvalidCatalog is returned when the catalog document fails validation.
var ErrInvalidCatalog = errors.New("invalid discount catalog")

var validate = validator.New()

// Document is the top-level catalog shape.
type Document struct {
	Rules []RuleDef `json:"rules" validate:"required,min=1,dive"`
}

// RuleDef declares one discount rule.
type RuleDef struct {
	Name       string           `json:"name" validate:"required"`
	Type       string           `json:"type" validate:"required,oneof=fixed percentage"`
	Amount     *MoneyDef        `json:"amount" validate:"required_if=Type fixed"`
	Percent    *decimal.Decimal `json:"percent" validate:"required_if=Type percentage"`
	Conditions []ConditionDef   `json:"conditions" validate:"omitempty,dive"`
}

// MoneyDef declares a monetary rule parameter.
type MoneyDef struct {
	Amount   decimal.Decimal `json:"amount" validate:"required"`
	Currency string          `json:"currency" validate:"required,len=3,uppercase"`
}

// ConditionDef declares one eligibility condition.
type ConditionDef struct {
	Type         string   `json:"type" validate:"required,oneof=min_quantity product_codes"`
	MinQuantity  int      `json:"minQuantity" validate:"required_if=Type min_quantity,omitempty,min=1"`
	ProductCodes []string `json:"productCodes" validate:"required_if=Type product_codes,omitempty,min=1,dive,required"`
}

// Parse decodes, validates and compiles a catalog document.
func Parse(r io.Reader) ([]discount.Rule, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}
	rules := make([]discount.Rule, 0, len(doc.Rules))
	for _, def := range doc.Rules {
		rule, err := compile(def)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// Load reads a catalog document from disk.
func Load(path string) ([]discount.Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// FromJSON parses a catalog from an inline JSON string.
func FromJSON(document string) ([]discount.Rule, error) {
	return Parse(strings.NewReader(document))
}

func compile(def RuleDef) (discount.Rule, error) {
	conditions, err := compileConditions(def.Conditions)
	if err != nil {
		return nil, err
	}
	switch def.Type {
	case "fixed":
		amount := money.New(def.Amount.Amount, def.Amount.Currency)
		return discount.NewFixedAmount(def.Name, amount, conditions...), nil
	case "percentage":
		percent, err := money.NewPercentage(*def.Percent)
		if err != nil {
			return nil, fmt.Errorf("%w: rule %q: %v", ErrInvalidCatalog, def.Name, err)
		}
		return discount.NewPercentageOff(def.Name, percent, conditions...), nil
	default:
		return nil, fmt.Errorf("%w: rule %q: unknown type %q", ErrInvalidCatalog, def.Name, def.Type)
	}
}

func compileConditions(defs []ConditionDef) ([]discount.Condition, error) {
	if len(defs) == 0 {
		return nil, nil
	}
	conditions := make([]discount.Condition, 0, len(defs))
	for _, def := range defs {
		switch def.Type {
		case "min_quantity":
			conditions = append(conditions, discount.MinQuantity{Min: def.MinQuantity})
		case "product_codes":
			conditions = append(conditions, discount.NewProductCodes(def.ProductCodes...))
		default:
			return nil, fmt.Errorf("%w: unknown condition type %q", ErrInvalidCatalog, def.Type)
		}
	}
	return conditions, nil
}
