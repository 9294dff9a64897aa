// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/lastbite/lastbite-backend/internal/domain/cart"
)

// HistoryLimit caps the number of orders kept per session; the oldest order
// falls off when a new one pushes past the cap.
const HistoryLimit = 30

// LineSnapshot freezes a cart line at checkout time. Later catalog edits
// must not rewrite completed orders.
type LineSnapshot struct {
	DealID             string               `json:"deal_id"`
	Title              string               `json:"title"`
	Partner            string               `json:"partner"`
	Mode               cart.FulfillmentMode `json:"mode"`
	Quantity           int                  `json:"quantity"`
	PriceCents         int64                `json:"price_cents"`
	OriginalValueCents int64                `json:"original_value_cents"`
}

// Impact is the rescue impact attributed to a single order
type Impact struct {
	Meals            int     `json:"meals"`
	KgFoodSaved      float64 `json:"kg_food_saved"`
	KgCO2eAvoided    float64 `json:"kg_co2e_avoided"`
	GrossProfitCents int64   `json:"gross_profit_cents"`
	DonatedCents     int64   `json:"donated_cents"`
}

// Order is a completed checkout
type Order struct {
	ID                 string         `json:"id"`
	CreatedAt          time.Time      `json:"created_at"`
	Lines              []LineSnapshot `json:"lines"`
	SubtotalCents      int64          `json:"subtotal_cents"`
	OriginalTotalCents int64          `json:"original_total_cents"`
	SavingsCents       int64          `json:"savings_cents"`
	Impact             Impact         `json:"impact"`
}

// TotalQuantity returns the number of items across the order's lines
func (o *Order) TotalQuantity() int {
	total := 0
	for _, line := range o.Lines {
		total += line.Quantity
	}
	return total
}

// PushHistory prepends an order to a history slice, most recent first,
// truncating past HistoryLimit.
func PushHistory(history []Order, o Order) []Order {
	history = append([]Order{o}, history...)
	if len(history) > HistoryLimit {
		history = history[:HistoryLimit]
	}
	return history
}
