// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lastbite/lastbite-backend/internal/config"
	"github.com/lastbite/lastbite-backend/internal/domain/cart"
	"github.com/lastbite/lastbite-backend/internal/domain/impact"
	"github.com/lastbite/lastbite-backend/internal/domain/order"
	"github.com/lastbite/lastbite-backend/internal/store"
)

// Checkout errors
var (
	ErrEmptyCart    = errors.New("cart is empty")
	ErrInvalidScope = errors.New("invalid impact scope")
)

// Service turns a cart into an order and folds the order's impact into the
// session's totals and the shared community totals.
type Service struct {
	store  store.Store
	cart   *cart.Service
	config *config.Config
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewService creates a new checkout service
func NewService(st store.Store, cartService *cart.Service, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  st,
		cart:   cartService,
		config: cfg,
		logger: logger,
	}
}

func ordersKey(sessionID string) string {
	return "orders:" + sessionID
}

func userImpactKey(sessionID string) string {
	return "impact:user:" + sessionID
}

const communityImpactKey = "impact:community"

// computeImpact derives rescue impact from the cart snapshot. Every item is
// one rescued meal; gross profit depends on each line's fulfillment mode, and
// the donation is a fixed share of gross profit, rounded to the nearest cent.
func (s *Service) computeImpact(totals *cart.Totals) order.Impact {
	cfg := s.config.Impact

	var gross int64
	for _, line := range totals.Lines {
		perItem := cfg.GrossProfitPickupCents
		if line.Mode == cart.ModeDelivery {
			perItem = cfg.GrossProfitDeliveryCents
		}
		gross += perItem * int64(line.Quantity)
	}

	meals := totals.TotalQuantity
	return order.Impact{
		Meals:            meals,
		KgFoodSaved:      float64(meals) * cfg.KgFoodPerMeal,
		KgCO2eAvoided:    float64(meals) * cfg.KgCO2ePerMeal,
		GrossProfitCents: gross,
		DonatedCents:     int64(math.Round(float64(gross) * cfg.DonationRate)),
	}
}

// communityBaseline returns the seeded community totals
func (s *Service) communityBaseline() impact.Totals {
	base := s.config.Impact.CommunityBaseline
	return impact.Totals{
		MealsRescued:       base.Meals,
		KgFoodSaved:        base.KgFood,
		KgCO2eAvoided:      base.KgCO2e,
		AmountDonatedCents: base.DonatedCents,
		AmountSavedCents:   base.SavingsCents,
	}
}

// Checkout completes the session's cart. An empty cart is rejected and
// nothing changes. Otherwise the order is recorded, both impact scopes are
// updated, and the cart is cleared last so a failure earlier never loses it.
func (s *Service) Checkout(ctx context.Context, sessionID string) (*order.Order, error) {
	totals := s.cart.ComputeTotals(ctx, sessionID)
	if totals.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lines := make([]order.LineSnapshot, 0, len(totals.Lines))
	for _, view := range totals.Lines {
		lines = append(lines, order.LineSnapshot{
			DealID:             view.DealID,
			Title:              view.Title,
			Partner:            view.Partner,
			Mode:               view.Mode,
			Quantity:           view.Quantity,
			PriceCents:         view.PriceCents,
			OriginalValueCents: view.OriginalValueCents,
		})
	}

	o := order.Order{
		ID:                 uuid.New().String(),
		CreatedAt:          time.Now().UTC(),
		Lines:              lines,
		SubtotalCents:      totals.SubtotalCents,
		OriginalTotalCents: totals.OriginalTotalCents,
		SavingsCents:       totals.SavingsCents,
		Impact:             s.computeImpact(totals),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var history []order.Order
	s.store.Get(ctx, ordersKey(sessionID), &history)
	history = order.PushHistory(history, o)
	s.store.Set(ctx, ordersKey(sessionID), history)

	var user impact.Totals
	s.store.Get(ctx, userImpactKey(sessionID), &user)
	user.Fold(&o)
	s.store.Set(ctx, userImpactKey(sessionID), user)

	community := s.communityBaseline()
	s.store.Get(ctx, communityImpactKey, &community)
	community.Fold(&o)
	s.store.Set(ctx, communityImpactKey, community)

	s.cart.Clear(ctx, sessionID)

	s.logger.WithFields(logrus.Fields{
		"session_id":     sessionID,
		"order_id":       o.ID,
		"subtotal_cents": o.SubtotalCents,
		"meals":          o.Impact.Meals,
	}).Info("Checkout completed")

	return &o, nil
}

// GetOrderHistory returns the session's orders, most recent first
func (s *Service) GetOrderHistory(ctx context.Context, sessionID string) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var history []order.Order
	s.store.Get(ctx, ordersKey(sessionID), &history)
	if history == nil {
		history = []order.Order{}
	}
	return history
}

// GetImpactTotals returns the totals for the requested scope. The community
// scope falls back to the seeded baseline until the first checkout lands.
func (s *Service) GetImpactTotals(ctx context.Context, sessionID string, scope impact.Scope) (*impact.Totals, error) {
	if !scope.Valid() {
		return nil, ErrInvalidScope
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if scope == impact.ScopeCommunity {
		totals := s.communityBaseline()
		s.store.Get(ctx, communityImpactKey, &totals)
		return &totals, nil
	}

	var totals impact.Totals
	s.store.Get(ctx, userImpactKey(sessionID), &totals)
	return &totals, nil
}

// ResetImpact clears the session's own impact and order history. The shared
// community totals are not owned by any session and stay put.
func (s *Service) ResetImpact(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Delete(ctx, userImpactKey(sessionID))
	s.store.Delete(ctx, ordersKey(sessionID))

	s.logger.WithField("session_id", sessionID).Info("Session impact reset")
}
