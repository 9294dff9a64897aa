package cart

import (
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastbite/lastbite-backend/internal/domain/catalog"
	"github.com/lastbite/lastbite-backend/internal/store"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func testDeals() []catalog.Deal {
	return []catalog.Deal{
		{
			ID:                 "bread-box",
			Partner:            "COBS Bread",
			Title:              "Bread Box",
			DeliveryAvailable:  false,
			PriceCents:         800,
			OriginalValueCents: 2000,
		},
		{
			ID:                 "whole-pie",
			Partner:            "Revolver Pizza Co.",
			Title:              "Whole Pie",
			DeliveryAvailable:  true,
			PriceCents:         1800,
			OriginalValueCents: 3800,
		},
		{
			// Inconsistent pricing on purpose: savings must clamp at zero
			ID:                 "overpriced",
			Partner:            "Oddities",
			Title:              "Overpriced Box",
			DeliveryAvailable:  true,
			PriceCents:         500,
			OriginalValueCents: 300,
		},
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cat, err := catalog.NewService(testDeals(), testLogger())
	require.NoError(t, err)
	return NewService(store.NewMemory(testLogger()), cat, testLogger())
}

const sid = "session-1"

func TestAddLineReflectsInTotals(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 2))

	totals := svc.ComputeTotals(ctx, sid)
	require.Len(t, totals.Lines, 1)
	assert.Equal(t, 2, totals.TotalQuantity)
	assert.Equal(t, int64(1600), totals.SubtotalCents)
	assert.Equal(t, int64(4000), totals.OriginalTotalCents)
	assert.Equal(t, int64(2400), totals.SavingsCents)
	assert.Equal(t, "COBS Bread", totals.Lines[0].Partner)
}

func TestAddLineMergesSameIdentity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 1))
	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 2))

	lines := svc.Lines(ctx, sid)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
}

func TestSameDealDifferentModesAreSeparateLines(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "whole-pie", ModePickup, 1))
	require.NoError(t, svc.AddLine(ctx, sid, "whole-pie", ModeDelivery, 1))

	assert.Len(t, svc.Lines(ctx, sid), 2)
	assert.Equal(t, 2, svc.ItemCount(ctx, sid))
}

func TestAddLineValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.ErrorIs(t, svc.AddLine(ctx, sid, "no-such-deal", ModePickup, 1), ErrUnknownDeal)
	assert.ErrorIs(t, svc.AddLine(ctx, sid, "bread-box", ModeDelivery, 1), ErrDeliveryUnavailable)
	assert.ErrorIs(t, svc.AddLine(ctx, sid, "bread-box", FulfillmentMode("teleport"), 1), ErrInvalidMode)
	assert.Empty(t, svc.Lines(ctx, sid))
}

func TestQuantityClamping(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	// Merging past the ceiling saturates
	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 60))
	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 60))
	assert.Equal(t, MaxQuantity, svc.Lines(ctx, sid)[0].Quantity)

	// Setting out-of-range values clamps rather than errors
	require.NoError(t, svc.SetQuantity(ctx, sid, "bread-box", ModePickup, 500))
	assert.Equal(t, MaxQuantity, svc.Lines(ctx, sid)[0].Quantity)

	require.NoError(t, svc.SetQuantity(ctx, sid, "bread-box", ModePickup, -5))
	assert.Equal(t, MinQuantity, svc.Lines(ctx, sid)[0].Quantity)

	// Incrementing at the ceiling stays there
	require.NoError(t, svc.SetQuantity(ctx, sid, "bread-box", ModePickup, MaxQuantity))
	require.NoError(t, svc.IncrementLine(ctx, sid, "bread-box", ModePickup))
	assert.Equal(t, MaxQuantity, svc.Lines(ctx, sid)[0].Quantity)
}

func TestSetQuantityMissingLine(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.ErrorIs(t, svc.SetQuantity(ctx, sid, "bread-box", ModePickup, 2), ErrLineNotFound)
}

func TestDecrementRemovesAtFloor(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 2))
	require.NoError(t, svc.DecrementLine(ctx, sid, "bread-box", ModePickup))
	assert.Equal(t, 1, svc.Lines(ctx, sid)[0].Quantity)

	require.NoError(t, svc.DecrementLine(ctx, sid, "bread-box", ModePickup))
	assert.Empty(t, svc.Lines(ctx, sid))
}

func TestDecrementMissingLineIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	assert.NoError(t, svc.DecrementLine(ctx, sid, "bread-box", ModePickup))
	assert.Empty(t, svc.Lines(ctx, sid))
}

func TestRemoveLine(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 5))
	require.NoError(t, svc.RemoveLine(ctx, sid, "bread-box", ModePickup))
	assert.Empty(t, svc.Lines(ctx, sid))

	assert.ErrorIs(t, svc.RemoveLine(ctx, sid, "bread-box", ModePickup), ErrLineNotFound)
}

func TestChangeMode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "whole-pie", ModePickup, 2))

	t.Run("switches the line", func(t *testing.T) {
		require.NoError(t, svc.ChangeMode(ctx, sid, "whole-pie", ModePickup, ModeDelivery))
		lines := svc.Lines(ctx, sid)
		require.Len(t, lines, 1)
		assert.Equal(t, ModeDelivery, lines[0].Mode)
	})

	t.Run("same mode is a no-op", func(t *testing.T) {
		require.NoError(t, svc.ChangeMode(ctx, sid, "whole-pie", ModeDelivery, ModeDelivery))
		assert.Len(t, svc.Lines(ctx, sid), 1)
	})

	t.Run("merges into existing target line", func(t *testing.T) {
		require.NoError(t, svc.AddLine(ctx, sid, "whole-pie", ModePickup, 3))
		require.NoError(t, svc.ChangeMode(ctx, sid, "whole-pie", ModePickup, ModeDelivery))

		lines := svc.Lines(ctx, sid)
		require.Len(t, lines, 1)
		assert.Equal(t, ModeDelivery, lines[0].Mode)
		assert.Equal(t, 5, lines[0].Quantity)
	})

	t.Run("rejects delivery on pickup-only deal", func(t *testing.T) {
		require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 1))
		assert.ErrorIs(t, svc.ChangeMode(ctx, sid, "bread-box", ModePickup, ModeDelivery), ErrDeliveryUnavailable)
	})

	t.Run("missing line", func(t *testing.T) {
		assert.ErrorIs(t, svc.ChangeMode(ctx, sid, "overpriced", ModePickup, ModeDelivery), ErrLineNotFound)
	})
}

func TestComputeTotalsClampsNegativeSavings(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "overpriced", ModePickup, 1))

	totals := svc.ComputeTotals(ctx, sid)
	require.Len(t, totals.Lines, 1)
	assert.Equal(t, int64(500), totals.SubtotalCents)
	assert.Equal(t, int64(300), totals.OriginalTotalCents)
	assert.Equal(t, int64(0), totals.SavingsCents)
	assert.Equal(t, int64(0), totals.Lines[0].LineSavingsCents)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, sid, "bread-box", ModePickup, 2))
	svc.Clear(ctx, sid)

	assert.Empty(t, svc.Lines(ctx, sid))
	assert.True(t, svc.ComputeTotals(ctx, sid).IsEmpty())
}

func TestCartsAreSessionScoped(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	require.NoError(t, svc.AddLine(ctx, "session-a", "bread-box", ModePickup, 1))

	assert.Empty(t, svc.Lines(ctx, "session-b"))
	assert.Len(t, svc.Lines(ctx, "session-a"), 1)
}
