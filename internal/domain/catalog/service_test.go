package catalog

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(Seed(), testLogger())
	require.NoError(t, err)
	return svc
}

func TestSeedCatalogIsConsistent(t *testing.T) {
	svc := newTestService(t)

	assert.Equal(t, 12, svc.Len())

	for _, deal := range svc.ListDeals(Query{}) {
		assert.Positive(t, deal.PriceCents, "deal %s", deal.ID)
		assert.GreaterOrEqual(t, deal.OriginalValueCents, deal.PriceCents, "deal %s", deal.ID)

		discount := deal.DiscountPercent()
		assert.GreaterOrEqual(t, discount, 0, "deal %s", deal.ID)
		assert.LessOrEqual(t, discount, 100, "deal %s", deal.ID)

		_, ok := deal.WindowEndAt(time.Now())
		assert.True(t, ok, "deal %s has a malformed window end", deal.ID)
	}
}

func TestNewServiceRejectsInvalidCatalog(t *testing.T) {
	tests := []struct {
		name  string
		deals []Deal
	}{
		{
			name:  "empty id",
			deals: []Deal{{ID: "", Title: "x", PriceCents: 100, OriginalValueCents: 200}},
		},
		{
			name: "duplicate id",
			deals: []Deal{
				{ID: "dup", Title: "a", PriceCents: 100, OriginalValueCents: 200},
				{ID: "dup", Title: "b", PriceCents: 100, OriginalValueCents: 200},
			},
		},
		{
			name:  "non-positive price",
			deals: []Deal{{ID: "free", Title: "x", PriceCents: 0, OriginalValueCents: 200}},
		},
		{
			name:  "negative distance",
			deals: []Deal{{ID: "far", Title: "x", PriceCents: 100, OriginalValueCents: 200, DistanceKm: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(tt.deals, testLogger())
			assert.Error(t, err)
		})
	}
}

func TestNewServiceKeepsOverpricedDeal(t *testing.T) {
	// A deal priced above its original value is suspicious but must not take
	// the catalog down; totals clamp the savings instead.
	svc, err := NewService([]Deal{
		{ID: "odd", Title: "x", PriceCents: 300, OriginalValueCents: 200},
	}, testLogger())
	require.NoError(t, err)

	deal, ok := svc.GetDeal("odd")
	require.True(t, ok)
	assert.Equal(t, 0, deal.DiscountPercent())
	assert.Equal(t, int64(0), deal.SavingsCents())
}

func TestGetDeal(t *testing.T) {
	svc := newTestService(t)

	deal, ok := svc.GetDeal("cobs-bread-box")
	require.True(t, ok)
	assert.Equal(t, "COBS Bread", deal.Partner)
	assert.Equal(t, int64(800), deal.PriceCents)
	assert.Equal(t, 60, deal.DiscountPercent())

	_, ok = svc.GetDeal("no-such-deal")
	assert.False(t, ok)
}

func TestGetDealReturnsACopy(t *testing.T) {
	svc := newTestService(t)

	deal, ok := svc.GetDeal("cobs-bread-box")
	require.True(t, ok)
	deal.PriceCents = 1
	deal.Title = "scribbled over"

	// The catalog must not see the caller's mutation
	again, ok := svc.GetDeal("cobs-bread-box")
	require.True(t, ok)
	assert.Equal(t, int64(800), again.PriceCents)
	assert.Equal(t, "End-of-day Bread Box (3 items)", again.Title)
}

func TestListDealsFilters(t *testing.T) {
	svc := newTestService(t)

	t.Run("category", func(t *testing.T) {
		deals := svc.ListDeals(Query{Category: "bakery"})
		require.NotEmpty(t, deals)
		for _, d := range deals {
			assert.Equal(t, "Bakery", d.Category)
		}
	})

	t.Run("partner", func(t *testing.T) {
		deals := svc.ListDeals(Query{Partner: "COBS Bread"})
		assert.Len(t, deals, 2)
	})

	t.Run("delivery only", func(t *testing.T) {
		deals := svc.ListDeals(Query{DeliveryOnly: true})
		require.NotEmpty(t, deals)
		for _, d := range deals {
			assert.True(t, d.DeliveryAvailable)
		}
	})

	t.Run("pickup tag matches everything", func(t *testing.T) {
		deals := svc.ListDeals(Query{Tag: "pickup"})
		assert.Len(t, deals, svc.Len())
	})

	t.Run("dietary tag", func(t *testing.T) {
		deals := svc.ListDeals(Query{Tag: "Vegetarian"})
		require.NotEmpty(t, deals)
		for _, d := range deals {
			assert.True(t, d.HasTag("vegetarian"), "deal %s", d.ID)
		}
	})

	t.Run("search", func(t *testing.T) {
		deals := svc.ListDeals(Query{Search: "bagel"})
		require.NotEmpty(t, deals)
		for _, d := range deals {
			assert.Contains(t, []string{"Kettleman’s Bagels", "St. Urbain Bagel Bakery"}, d.Partner)
		}
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, svc.ListDeals(Query{Search: "sushi"}))
	})
}

func TestListDealsSorting(t *testing.T) {
	svc := newTestService(t)

	t.Run("best value", func(t *testing.T) {
		deals := svc.ListDeals(Query{Sort: SortBestValue})
		for i := 1; i < len(deals); i++ {
			assert.GreaterOrEqual(t, deals[i-1].DiscountPercent(), deals[i].DiscountPercent())
		}
	})

	t.Run("lowest price", func(t *testing.T) {
		deals := svc.ListDeals(Query{Sort: SortLowestPrice})
		for i := 1; i < len(deals); i++ {
			assert.LessOrEqual(t, deals[i-1].PriceCents, deals[i].PriceCents)
		}
	})

	t.Run("nearest", func(t *testing.T) {
		deals := svc.ListDeals(Query{Sort: SortNearest})
		for i := 1; i < len(deals); i++ {
			assert.LessOrEqual(t, deals[i-1].DistanceKm, deals[i].DistanceKm)
		}
	})

	t.Run("ending soon", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 19, 0, 0, 0, time.Local)
		deals := svc.ListDeals(Query{Sort: SortEndingSoon, Now: now})
		for i := 1; i < len(deals); i++ {
			prev, _ := deals[i-1].WindowEndAt(now)
			next, _ := deals[i].WindowEndAt(now)
			assert.False(t, next.Before(prev))
		}
	})
}

func TestPartnersAndCategories(t *testing.T) {
	svc := newTestService(t)

	partners := svc.Partners()
	assert.Contains(t, partners, "COBS Bread")
	assert.Contains(t, partners, "Revolver Pizza Co.")
	assert.IsIncreasing(t, partners)

	categories := svc.Categories()
	assert.ElementsMatch(t, []string{"Bagels", "Bakery", "Desserts", "Pizza"}, categories)
}
