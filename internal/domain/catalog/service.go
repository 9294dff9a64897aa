// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Sort options for deal listings
const (
	SortRecommended = "recommended"
	SortBestValue   = "best_value"
	SortEndingSoon  = "ending_soon"
	SortNearest     = "nearest"
	SortLowestPrice = "lowest_price"
)

// Query filters and sorts a deal listing. Zero values mean "no filter".
type Query struct {
	Category     string
	Partner      string
	Tag          string
	Search       string
	DeliveryOnly bool
	Sort         string
	Now          time.Time // reference time for ending-soon sorting; zero means time.Now()
}

// Service serves the static deal catalog
type Service struct {
	deals []Deal
	byID  map[string]*Deal
}

// NewService creates a catalog service from the given deals. Deals with a
// missing or duplicate id or a non-positive price are rejected. A deal priced
// above its original value is kept but logged: downstream totals clamp the
// savings to zero.
func NewService(deals []Deal, logger *logrus.Logger) (*Service, error) {
	s := &Service{
		deals: make([]Deal, len(deals)),
		byID:  make(map[string]*Deal, len(deals)),
	}
	copy(s.deals, deals)

	for i := range s.deals {
		d := &s.deals[i]
		if err := d.validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog: %w", err)
		}
		if _, exists := s.byID[d.ID]; exists {
			return nil, fmt.Errorf("invalid catalog: duplicate deal id %s", d.ID)
		}
		if d.OriginalValueCents < d.PriceCents {
			logger.WithField("deal_id", d.ID).Warn("Deal priced above its original value")
		}
		s.byID[d.ID] = d
	}

	return s, nil
}

// ListDeals returns the deals matching the query, sorted per Query.Sort.
func (s *Service) ListDeals(q Query) []Deal {
	list := make([]Deal, 0, len(s.deals))
	for i := range s.deals {
		if s.matches(&s.deals[i], &q) {
			list = append(list, s.deals[i])
		}
	}
	sortDeals(list, &q)
	return list
}

// GetDeal looks up a deal by id. The returned Deal is a copy: callers cannot
// reach into the catalog's backing slice.
func (s *Service) GetDeal(id string) (Deal, bool) {
	d, ok := s.byID[id]
	if !ok {
		return Deal{}, false
	}
	return *d, true
}

// Len returns the catalog size
func (s *Service) Len() int {
	return len(s.deals)
}

// Partners returns the distinct partner names, sorted
func (s *Service) Partners() []string {
	return s.distinct(func(d *Deal) string { return d.Partner })
}

// Categories returns the distinct categories, sorted
func (s *Service) Categories() []string {
	return s.distinct(func(d *Deal) string { return d.Category })
}

func (s *Service) distinct(field func(*Deal) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range s.deals {
		v := field(&s.deals[i])
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Service) matches(d *Deal, q *Query) bool {
	if q.Category != "" && !strings.EqualFold(d.Category, q.Category) {
		return false
	}
	if q.Partner != "" && !strings.EqualFold(d.Partner, q.Partner) {
		return false
	}
	if q.DeliveryOnly && !d.DeliveryAvailable {
		return false
	}
	if q.Tag != "" {
		// "delivery" selects deliverable deals; "pickup" matches everything
		// since every deal supports pickup.
		switch strings.ToLower(q.Tag) {
		case "delivery":
			if !d.DeliveryAvailable {
				return false
			}
		case "pickup":
		default:
			if !d.HasTag(q.Tag) {
				return false
			}
		}
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		hay := strings.ToLower(d.Title + " " + d.Partner + " " + d.Description + " " + d.Category)
		if !strings.Contains(hay, needle) {
			return false
		}
	}
	return true
}

func sortDeals(list []Deal, q *Query) {
	now := q.Now
	if now.IsZero() {
		now = time.Now()
	}

	switch q.Sort {
	case SortBestValue:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].DiscountPercent() > list[j].DiscountPercent()
		})
	case SortEndingSoon:
		sort.SliceStable(list, func(i, j int) bool {
			ei, iok := list[i].WindowEndAt(now)
			ej, jok := list[j].WindowEndAt(now)
			if iok != jok {
				return iok // malformed windows sort last
			}
			return ei.Before(ej)
		})
	case SortNearest:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].DistanceKm < list[j].DistanceKm
		})
	case SortLowestPrice:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].PriceCents < list[j].PriceCents
		})
	default: // recommended: best discount, then nearest
		sort.SliceStable(list, func(i, j int) bool {
			di, dj := list[i].DiscountPercent(), list[j].DiscountPercent()
			if di != dj {
				return di > dj
			}
			return list[i].DistanceKm < list[j].DistanceKm
		})
	}
}
