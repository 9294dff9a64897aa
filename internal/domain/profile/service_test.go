package profile

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/lastbite/lastbite-backend/internal/config"
	"github.com/lastbite/lastbite-backend/internal/store"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{
		Pilot: config.PilotConfig{
			PostalPrefixes: []string{"M5", "M6", "M4"},
		},
	}
	return NewService(store.NewMemory(logger), cfg, logger)
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	p := svc.SetPostal(ctx, "session-1", "  M5V 2T6 ")
	assert.Equal(t, "M5V 2T6", p.Postal)

	got := svc.Get(ctx, "session-1")
	assert.Equal(t, "M5V 2T6", got.Postal)

	// Other sessions see nothing
	assert.Empty(t, svc.Get(ctx, "session-2").Postal)
}

func TestClearProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	svc.SetPostal(ctx, "session-1", "M5V 2T6")
	svc.Clear(ctx, "session-1")

	assert.Empty(t, svc.Get(ctx, "session-1").Postal)
}

func TestInPilot(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		postal string
		want   bool
	}{
		{"M5V 2T6", true},
		{"m5v2t6", true}, // case and spacing normalized
		{" m4C 1a1 ", true},
		{"M6H 0A2", true},
		{"M7A 1A1", false}, // outside the pilot prefixes
		{"K1A 0B1", false},
		{"M", false}, // too short to carry a prefix
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, svc.InPilot(tt.postal), "postal %q", tt.postal)
	}
}
