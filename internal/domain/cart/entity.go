// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"strings"
	"time"
)

// FulfillmentMode is how a deal is collected
type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

// Quantity bounds for a single line
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Valid reports whether the mode is one of the known fulfillment modes
func (m FulfillmentMode) Valid() bool {
	return m == ModePickup || m == ModeDelivery
}

// ParseMode normalizes a client-supplied fulfillment mode
func ParseMode(s string) (FulfillmentMode, error) {
	m := FulfillmentMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return m, nil
}

// Line is one cart entry. Its identity is the (DealID, Mode) pair: the same
// deal can sit in the cart once for pickup and once for delivery.
type Line struct {
	DealID   string          `json:"deal_id"`
	Mode     FulfillmentMode `json:"mode"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"added_at"`
}

// LineView is a line resolved against the catalog's current pricing
type LineView struct {
	Line
	Title              string `json:"title"`
	Partner            string `json:"partner"`
	PriceCents         int64  `json:"price_cents"`
	OriginalValueCents int64  `json:"original_value_cents"`
	LineTotalCents     int64  `json:"line_total_cents"`
	LineSavingsCents   int64  `json:"line_savings_cents"`
}

// Totals is the computed cart summary
type Totals struct {
	Lines              []LineView `json:"lines"`
	ItemCount          int        `json:"item_count"`     // number of lines
	TotalQuantity      int        `json:"total_quantity"` // sum of all quantities
	SubtotalCents      int64      `json:"subtotal_cents"`
	OriginalTotalCents int64      `json:"original_total_cents"`
	SavingsCents       int64      `json:"savings_cents"` // never negative
}

// IsEmpty reports whether the cart snapshot has no lines
func (t *Totals) IsEmpty() bool {
	return len(t.Lines) == 0
}

func clampQuantity(qty int) int {
	if qty < MinQuantity {
		return MinQuantity
	}
	if qty > MaxQuantity {
		return MaxQuantity
	}
	return qty
}
