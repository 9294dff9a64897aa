// internal/domain/catalog/entity.go
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Deal represents a discounted surplus-food offer from a partner.
// Deals are defined at process start and never mutated.
type Deal struct {
	ID                 string   `json:"id"`
	Partner            string   `json:"partner"`
	Category           string   `json:"category"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Dietary            []string `json:"dietary"`
	Tags               []string `json:"tags"`
	WindowLabel        string   `json:"window_label"`         // e.g. "8:15–8:45 PM"
	WindowEnd          string   `json:"window_end"`           // 24h "HH:MM" local time
	DistanceKm         float64  `json:"distance_km"`
	DeliveryAvailable  bool     `json:"delivery_available"`
	PriceCents         int64    `json:"price_cents"`
	OriginalValueCents int64    `json:"original_value_cents"`
	Emoji              string   `json:"emoji,omitempty"`
}

// DiscountPercent returns the discount as a whole percentage,
// e.g. 60 for a $8 deal originally worth $20.
func (d *Deal) DiscountPercent() int {
	if d.OriginalValueCents <= 0 {
		return 0
	}
	pct := math.Round((1 - float64(d.PriceCents)/float64(d.OriginalValueCents)) * 100)
	if pct < 0 {
		return 0
	}
	return int(pct)
}

// SavingsCents returns the per-unit savings, never negative.
func (d *Deal) SavingsCents() int64 {
	if s := d.OriginalValueCents - d.PriceCents; s > 0 {
		return s
	}
	return 0
}

// WindowEndAt resolves the pickup window end to a point in time on the
// same calendar day as now. The second return value is false when the
// window end is malformed.
func (d *Deal) WindowEndAt(now time.Time) (time.Time, bool) {
	parts := strings.SplitN(d.WindowEnd, ":", 2)
	if len(parts) != 2 {
		return time.Time{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), true
}

// HasTag reports whether the deal carries the tag, in tags or dietary,
// case-insensitively.
func (d *Deal) HasTag(tag string) bool {
	want := strings.ToLower(tag)
	for _, t := range d.Tags {
		if strings.ToLower(t) == want {
			return true
		}
	}
	for _, t := range d.Dietary {
		if strings.ToLower(t) == want {
			return true
		}
	}
	return false
}

func (d *Deal) validate() error {
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("deal has empty id")
	}
	if d.PriceCents <= 0 {
		return fmt.Errorf("deal %s: price must be positive", d.ID)
	}
	if d.DistanceKm < 0 {
		return fmt.Errorf("deal %s: distance must not be negative", d.ID)
	}
	return nil
}
