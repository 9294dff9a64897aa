// internal/domain/impact/entity.go
package impact

import (
	"github.com/lastbite/lastbite-backend/internal/domain/order"
)

// Scope selects whose totals an impact query reads
type Scope string

const (
	ScopeUser      Scope = "user"
	ScopeCommunity Scope = "community"
)

// Valid reports whether the scope is one of the known impact scopes
func (s Scope) Valid() bool {
	return s == ScopeUser || s == ScopeCommunity
}

// Totals accumulates rescue impact across orders. The community scope starts
// from a seeded baseline; the user scope starts from zero.
type Totals struct {
	MealsRescued       int     `json:"meals_rescued"`
	KgFoodSaved        float64 `json:"kg_food_saved"`
	KgCO2eAvoided      float64 `json:"kg_co2e_avoided"`
	AmountDonatedCents int64   `json:"amount_donated_cents"`
	AmountSavedCents   int64   `json:"amount_saved_cents"`
	AmountSpentCents   int64   `json:"amount_spent_cents"`
}

// Fold adds one order's impact into the totals
func (t *Totals) Fold(o *order.Order) {
	t.MealsRescued += o.Impact.Meals
	t.KgFoodSaved += o.Impact.KgFoodSaved
	t.KgCO2eAvoided += o.Impact.KgCO2eAvoided
	t.AmountDonatedCents += o.Impact.DonatedCents
	t.AmountSavedCents += o.SavingsCents
	t.AmountSpentCents += o.SubtotalCents
}
