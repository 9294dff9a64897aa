// internal/domain/catalog/seed.go
package catalog

// Seed returns the demo catalog: end-of-day surplus deals from Toronto-area
// partners. Pickup windows cluster near closing time.
func Seed() []Deal {
	return []Deal{
		{
			ID:                 "cobs-bread-box",
			Partner:            "COBS Bread",
			Category:           "Bakery",
			Title:              "End-of-day Bread Box (3 items)",
			Description:        "Surprise mix (loaf + buns/rolls). Great for freezing.",
			Dietary:            []string{"Vegetarian", "Dairy-free"},
			Tags:               []string{"Pickup", "Best value"},
			WindowLabel:        "8:15–8:45 PM",
			WindowEnd:          "20:45",
			DistanceKm:         1.1,
			DeliveryAvailable:  false,
			PriceCents:         800,
			OriginalValueCents: 2000,
			Emoji:              "🍞",
		},
		{
			ID:                 "cobs-savory-pack",
			Partner:            "COBS Bread",
			Category:           "Bakery",
			Title:              "Savory Bake Pack (2 items)",
			Description:        "Assorted savory items (varies by day).",
			Dietary:            []string{},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "8:15–8:45 PM",
			WindowEnd:          "20:45",
			DistanceKm:         1.7,
			DeliveryAvailable:  false,
			PriceCents:         700,
			OriginalValueCents: 1300,
			Emoji:              "🥐",
		},
		{
			ID:                 "sanremo-surprise-bag",
			Partner:            "SanRemo Bakery",
			Category:           "Bakery",
			Title:              "Pastry Surprise Bag (6 pastries)",
			Description:        "Mixed pastries from today's surplus. May contain nuts.",
			Dietary:            []string{},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "9:00–9:30 PM",
			WindowEnd:          "21:30",
			DistanceKm:         4.6,
			DeliveryAvailable:  true,
			PriceCents:         1100,
			OriginalValueCents: 2400,
			Emoji:              "🥐",
		},
		{
			ID:                 "sanremo-cannoli-combo",
			Partner:            "SanRemo Bakery",
			Category:           "Bakery",
			Title:              "Cannoli + Cookie Combo",
			Description:        "2 cannoli + a cookie mix (varies).",
			Dietary:            []string{"Vegetarian"},
			Tags:               []string{"Pickup"},
			WindowLabel:        "9:00–9:30 PM",
			WindowEnd:          "21:30",
			DistanceKm:         5.2,
			DeliveryAvailable:  true,
			PriceCents:         1200,
			OriginalValueCents: 2000,
			Emoji:              "🍪",
		},
		{
			ID:                 "dufflet-slice-duo",
			Partner:            "Dufflet Pastries",
			Category:           "Desserts",
			Title:              "Cake Slice Duo",
			Description:        "Two assorted cake slices from end-of-day surplus.",
			Dietary:            []string{"Vegetarian"},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "7:45–8:15 PM",
			WindowEnd:          "20:15",
			DistanceKm:         5.3,
			DeliveryAvailable:  true,
			PriceCents:         900,
			OriginalValueCents: 1600,
			Emoji:              "🍰",
		},
		{
			ID:                 "dufflet-cookie-box",
			Partner:            "Dufflet Pastries",
			Category:           "Desserts",
			Title:              "Cookie & Bar Box (8 pieces)",
			Description:        "Assorted cookies + dessert bars.",
			Dietary:            []string{"Vegetarian", "Nut-free"},
			Tags:               []string{"Pickup", "Best value"},
			WindowLabel:        "7:45–8:15 PM",
			WindowEnd:          "20:15",
			DistanceKm:         4.4,
			DeliveryAvailable:  true,
			PriceCents:         1000,
			OriginalValueCents: 2000,
			Emoji:              "🧁",
		},
		{
			ID:                 "uncle-tetsu-slices",
			Partner:            "Uncle Tetsu’s Cheesecake",
			Category:           "Desserts",
			Title:              "Cheesecake Slices Box",
			Description:        "Surplus slices packed for takeaway.",
			Dietary:            []string{"Vegetarian"},
			Tags:               []string{"Pickup"},
			WindowLabel:        "8:20–9:00 PM",
			WindowEnd:          "21:00",
			DistanceKm:         2.0,
			DeliveryAvailable:  true,
			PriceCents:         1500,
			OriginalValueCents: 3400,
			Emoji:              "🍮",
		},
		{
			ID:                 "kettleman-dozen",
			Partner:            "Kettleman’s Bagels",
			Category:           "Bagels",
			Title:              "Bagel Dozen (Surplus)",
			Description:        "A dozen bagels from the last bake (varies).",
			Dietary:            []string{"Dairy-free", "Nut-free"},
			Tags:               []string{"Pickup", "Best value"},
			WindowLabel:        "8:00–8:45 PM",
			WindowEnd:          "20:45",
			DistanceKm:         3.1,
			DeliveryAvailable:  false,
			PriceCents:         900,
			OriginalValueCents: 2000,
			Emoji:              "🥯",
		},
		{
			ID:                 "st-urbain-half-dozen",
			Partner:            "St. Urbain Bagel Bakery",
			Category:           "Bagels",
			Title:              "Half-Dozen Bagel Mix",
			Description:        "6 assorted bagels near closing.",
			Dietary:            []string{"Nut-free"},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "7:45–8:20 PM",
			WindowEnd:          "20:20",
			DistanceKm:         2.6,
			DeliveryAvailable:  false,
			PriceCents:         600,
			OriginalValueCents: 1200,
			Emoji:              "🥯",
		},
		{
			ID:                 "krispy-dozen",
			Partner:            "Krispy Kreme",
			Category:           "Desserts",
			Title:              "End-of-day Dozen (Assorted)",
			Description:        "Surplus assorted donuts (limited quantity).",
			Dietary:            []string{"Vegetarian", "Nut-free"},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "9:10–9:50 PM",
			WindowEnd:          "21:50",
			DistanceKm:         4.8,
			DeliveryAvailable:  true,
			PriceCents:         1000,
			OriginalValueCents: 2400,
			Emoji:              "🍩",
		},
		{
			ID:                 "revolver-slice-pack",
			Partner:            "Revolver Pizza Co.",
			Category:           "Pizza",
			Title:              "Late Slice Pack (3 slices)",
			Description:        "End-of-night slices (chef’s choice).",
			Dietary:            []string{},
			Tags:               []string{"Pickup", "Best value"},
			WindowLabel:        "9:00–9:40 PM",
			WindowEnd:          "21:40",
			DistanceKm:         2.4,
			DeliveryAvailable:  true,
			PriceCents:         1200,
			OriginalValueCents: 2700,
			Emoji:              "🍕",
		},
		{
			ID:                 "revolver-whole-pie",
			Partner:            "Revolver Pizza Co.",
			Category:           "Pizza",
			Title:              "Surplus Whole Pie (limited)",
			Description:        "A surplus pie from the last bake run (varies).",
			Dietary:            []string{},
			Tags:               []string{"Pickup", "Limited"},
			WindowLabel:        "9:00–9:40 PM",
			WindowEnd:          "21:40",
			DistanceKm:         2.9,
			DeliveryAvailable:  true,
			PriceCents:         1800,
			OriginalValueCents: 3800,
			Emoji:              "🍕",
		},
	}
}
