// internal/domain/profile/service.go
package profile

import (
	"context"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/lastbite/lastbite-backend/internal/config"
	"github.com/lastbite/lastbite-backend/internal/store"
)

// Profile holds the session's saved details
type Profile struct {
	Postal string `json:"postal"`
}

// Service manages per-session profiles and the delivery pilot area check
type Service struct {
	store  store.Store
	config *config.Config
	logger *logrus.Logger
	mu     sync.Mutex
}

// NewService creates a new profile service
func NewService(st store.Store, cfg *config.Config, logger *logrus.Logger) *Service {
	return &Service{
		store:  st,
		config: cfg,
		logger: logger,
	}
}

func profileKey(sessionID string) string {
	return "profile:" + sessionID
}

// Get returns the session's profile, empty if none was saved
func (s *Service) Get(ctx context.Context, sessionID string) *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	var p Profile
	s.store.Get(ctx, profileKey(sessionID), &p)
	return &p
}

// SetPostal saves the session's postal code
func (s *Service) SetPostal(ctx context.Context, sessionID, postal string) *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Profile{Postal: strings.TrimSpace(postal)}
	s.store.Set(ctx, profileKey(sessionID), p)

	s.logger.WithFields(logrus.Fields{
		"session_id": sessionID,
		"in_pilot":   s.inPilot(p.Postal),
	}).Debug("Profile postal updated")
	return &p
}

// Clear removes the session's profile
func (s *Service) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(ctx, profileKey(sessionID))
}

// InPilot reports whether a postal code falls in the delivery pilot area.
// The check normalizes spacing and case and matches on the leading forward
// sortation prefix, so "m5V 2T6" and "M5V2T6" both qualify.
func (s *Service) InPilot(postal string) bool {
	return s.inPilot(postal)
}

func (s *Service) inPilot(postal string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(postal, " ", ""))
	if len(normalized) < 2 {
		return false
	}
	prefix := normalized[:2]
	for _, p := range s.config.Pilot.PostalPrefixes {
		if prefix == strings.ToUpper(p) {
			return true
		}
	}
	return false
}
