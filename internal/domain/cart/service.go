// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lastbite/lastbite-backend/internal/domain/catalog"
	"github.com/lastbite/lastbite-backend/internal/store"
)

// Cart errors
var (
	ErrUnknownDeal         = errors.New("deal not found in catalog")
	ErrDeliveryUnavailable = errors.New("delivery is not available for this deal")
	ErrLineNotFound        = errors.New("cart line not found")
	ErrInvalidMode         = errors.New("invalid fulfillment mode")
)

// Service implements the cart ledger. Each session owns one cart, persisted
// in the store under a session-scoped key; lines are keyed by (deal, mode).
type Service struct {
	store   store.Store
	catalog *catalog.Service
	logger  *logrus.Logger
	mu      sync.Mutex
}

// NewService creates a new cart service
func NewService(st store.Store, cat *catalog.Service, logger *logrus.Logger) *Service {
	return &Service{
		store:   st,
		catalog: cat,
		logger:  logger,
	}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *Service) load(ctx context.Context, sessionID string) []Line {
	var lines []Line
	s.store.Get(ctx, cartKey(sessionID), &lines)
	return lines
}

func (s *Service) save(ctx context.Context, sessionID string, lines []Line) {
	if len(lines) == 0 {
		s.store.Delete(ctx, cartKey(sessionID))
		return
	}
	s.store.Set(ctx, cartKey(sessionID), lines)
}

func findLine(lines []Line, dealID string, mode FulfillmentMode) int {
	for i := range lines {
		if lines[i].DealID == dealID && lines[i].Mode == mode {
			return i
		}
	}
	return -1
}

// validateDeal checks the deal exists and supports the requested mode
func (s *Service) validateDeal(dealID string, mode FulfillmentMode) error {
	if !mode.Valid() {
		return ErrInvalidMode
	}
	deal, ok := s.catalog.GetDeal(dealID)
	if !ok {
		return ErrUnknownDeal
	}
	if mode == ModeDelivery && !deal.DeliveryAvailable {
		return ErrDeliveryUnavailable
	}
	return nil
}

// AddLine adds quantity of a deal under the given mode. If a line with the
// same (deal, mode) identity already exists the quantities merge; the result
// is clamped to the allowed range.
func (s *Service) AddLine(ctx context.Context, sessionID, dealID string, mode FulfillmentMode, quantity int) error {
	if err := s.validateDeal(dealID, mode); err != nil {
		return err
	}
	if quantity < MinQuantity {
		quantity = MinQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	if i := findLine(lines, dealID, mode); i >= 0 {
		lines[i].Quantity = clampQuantity(lines[i].Quantity + quantity)
	} else {
		lines = append(lines, Line{
			DealID:   dealID,
			Mode:     mode,
			Quantity: clampQuantity(quantity),
			AddedAt:  time.Now().UTC(),
		})
	}
	s.save(ctx, sessionID, lines)

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"deal_id":    dealID,
		"mode":       mode,
		"quantity":   quantity,
	}).Debug("Cart line added")
	return nil
}

// SetQuantity sets a line's quantity directly, clamped to the allowed range.
// Setting a quantity never removes the line; removal goes through RemoveLine
// or a decrement below the minimum.
func (s *Service) SetQuantity(ctx context.Context, sessionID, dealID string, mode FulfillmentMode, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	i := findLine(lines, dealID, mode)
	if i < 0 {
		return ErrLineNotFound
	}
	lines[i].Quantity = clampQuantity(quantity)
	s.save(ctx, sessionID, lines)
	return nil
}

// IncrementLine raises a line's quantity by one, saturating at the maximum
func (s *Service) IncrementLine(ctx context.Context, sessionID, dealID string, mode FulfillmentMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	i := findLine(lines, dealID, mode)
	if i < 0 {
		return ErrLineNotFound
	}
	lines[i].Quantity = clampQuantity(lines[i].Quantity + 1)
	s.save(ctx, sessionID, lines)
	return nil
}

// DecrementLine lowers a line's quantity by one. Dropping below the minimum
// removes the line. Decrementing a line that does not exist is a no-op.
func (s *Service) DecrementLine(ctx context.Context, sessionID, dealID string, mode FulfillmentMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	i := findLine(lines, dealID, mode)
	if i < 0 {
		return nil
	}
	lines[i].Quantity--
	if lines[i].Quantity < MinQuantity {
		lines = append(lines[:i], lines[i+1:]...)
	}
	s.save(ctx, sessionID, lines)
	return nil
}

// RemoveLine deletes a line regardless of its quantity
func (s *Service) RemoveLine(ctx context.Context, sessionID, dealID string, mode FulfillmentMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	i := findLine(lines, dealID, mode)
	if i < 0 {
		return ErrLineNotFound
	}
	lines = append(lines[:i], lines[i+1:]...)
	s.save(ctx, sessionID, lines)
	return nil
}

// ChangeMode switches a line between pickup and delivery. Switching to the
// mode the line already has is a no-op. If a line with the target identity
// already exists the two merge, clamped to the allowed range.
func (s *Service) ChangeMode(ctx context.Context, sessionID, dealID string, from, to FulfillmentMode) error {
	if !from.Valid() || !to.Valid() {
		return ErrInvalidMode
	}
	if from == to {
		return nil
	}
	if err := s.validateDeal(dealID, to); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.load(ctx, sessionID)
	i := findLine(lines, dealID, from)
	if i < 0 {
		return ErrLineNotFound
	}

	if j := findLine(lines, dealID, to); j >= 0 {
		lines[j].Quantity = clampQuantity(lines[j].Quantity + lines[i].Quantity)
		lines = append(lines[:i], lines[i+1:]...)
	} else {
		lines[i].Mode = to
	}
	s.save(ctx, sessionID, lines)
	return nil
}

// Clear empties the session's cart
func (s *Service) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(ctx, cartKey(sessionID))
}

// Lines returns the raw cart lines for a session
func (s *Service) Lines(ctx context.Context, sessionID string) []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx, sessionID)
}

// ItemCount returns the total quantity across all lines
func (s *Service) ItemCount(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, line := range s.load(ctx, sessionID) {
		total += line.Quantity
	}
	return total
}

// ComputeTotals resolves the cart against the catalog and sums it up. Lines
// whose deal has left the catalog are skipped rather than failing the cart.
// Savings never go negative even if a deal is priced above its original value.
func (s *Service) ComputeTotals(ctx context.Context, sessionID string) *Totals {
	s.mu.Lock()
	defer s.mu.Unlock()

	totals := &Totals{Lines: []LineView{}}
	for _, line := range s.load(ctx, sessionID) {
		deal, ok := s.catalog.GetDeal(line.DealID)
		if !ok {
			s.logger.WithFields(logrus.Fields{
				"session_id": sessionID,
				"deal_id":    line.DealID,
			}).Warn("Skipping cart line for unknown deal")
			continue
		}

		qty := int64(line.Quantity)
		lineTotal := deal.PriceCents * qty
		lineOriginal := deal.OriginalValueCents * qty
		lineSavings := lineOriginal - lineTotal
		if lineSavings < 0 {
			lineSavings = 0
		}

		totals.Lines = append(totals.Lines, LineView{
			Line:               line,
			Title:              deal.Title,
			Partner:            deal.Partner,
			PriceCents:         deal.PriceCents,
			OriginalValueCents: deal.OriginalValueCents,
			LineTotalCents:     lineTotal,
			LineSavingsCents:   lineSavings,
		})
		totals.ItemCount++
		totals.TotalQuantity += line.Quantity
		totals.SubtotalCents += lineTotal
		totals.OriginalTotalCents += lineOriginal
	}

	totals.SavingsCents = totals.OriginalTotalCents - totals.SubtotalCents
	if totals.SavingsCents < 0 {
		totals.SavingsCents = 0
	}
	return totals
}
