// Package quote exposes the discount engine over HTTP.
package quote

import (
	"encoding/json"
	"errors"
	"net/http"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/noah-isme/discount-engine/internal/cart"
	"github.com/noah-isme/discount-engine/internal/common"
	"github.com/noah-isme/discount-engine/internal/discount"
	"github.com/noah-isme/discount-engine/internal/money"
	"github.com/noah-isme/discount-engine/internal/obs"
)

var validate = validator.New()

// Handler wires the discount calculator to HTTP.
type Handler struct {
	Calculator *discount.Calculator
	Logger     zerolog.Logger
	Metrics    *obs.DomainMetrics
}

type itemPayload struct {
	ProductCode string          `json:"productCode" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unitPrice" validate:"required"`
	Currency    string          `json:"currency" validate:"required,len=3,uppercase"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
}

type quoteRequest struct {
	Items []itemPayload `json:"items" validate:"required,min=1,dive"`
}

type quoteItem struct {
	ProductCode string `json:"productCode"`
	LineTotal   string `json:"lineTotal"`
	Discount    string `json:"discount"`
}

type quoteResponse struct {
	QuoteID       string      `json:"quoteId"`
	Currency      string      `json:"currency"`
	TotalDiscount string      `json:"totalDiscount"`
	Items         []quoteItem `json:"items"`
}

// Create computes a discount quote for the submitted cart.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	if h.Calculator == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "quote service not configured", nil)
		return
	}
	var payload quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if err := validate.Struct(payload); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request payload", validationDetails(err))
		return
	}

	items := make([]cart.Item, 0, len(payload.Items))
	for _, p := range payload.Items {
		item, err := cart.NewItem(p.ProductCode, money.New(p.UnitPrice, p.Currency), p.Quantity)
		if err != nil {
			common.JSONError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE", err.Error(), nil)
			return
		}
		items = append(items, item)
	}

	quoteItems := make([]quoteItem, 0, len(items))
	for _, item := range items {
		amount, err := h.Calculator.ItemDiscount(item)
		if err != nil {
			h.writeError(w, err)
			return
		}
		quoteItems = append(quoteItems, quoteItem{
			ProductCode: item.ProductCode(),
			LineTotal:   item.TotalPrice().Amount().String(),
			Discount:    amount.Amount().String(),
		})
	}

	total, err := h.Calculator.TotalDiscount(items)
	if err != nil {
		h.writeError(w, err)
		return
	}

	quoteID := uuid.NewString()
	if h.Metrics != nil {
		h.Metrics.ObserveQuote(len(items))
	}
	h.Logger.Info().
		Str("quote_id", quoteID).
		Int("items", len(items)).
		Str("total_discount", total.String()).
		Msg("quote computed")

	common.JSON(w, http.StatusOK, map[string]any{
		"data": quoteResponse{
			QuoteID:       quoteID,
			Currency:      total.Currency(),
			TotalDiscount: total.Amount().String(),
			Items:         quoteItems,
		},
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, money.ErrCurrencyMismatch):
		common.JSONError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE", "cart items must share one currency", nil)
	case errors.Is(err, cart.ErrInvalidItem), errors.Is(err, money.ErrInvalidRange):
		common.JSONError(w, http.StatusUnprocessableEntity, "UNPROCESSABLE", err.Error(), nil)
	default:
		h.Logger.Error().Err(err).Msg("compute quote")
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "unable to compute quote", nil)
	}
}

func validationDetails(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace())
	}
	return map[string]any{"fields": fields}
}
