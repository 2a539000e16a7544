// Package seed is the source of truth for the demo catalog. NGOs and the
// first four needs are rebuilt from these definitions on every load; only
// user-posted needs (id > 4) go through the key-value store.
package seed

import (
	"time"

	"hopebridge/pkg/types"
)

// MaxSeedNeedID separates seed needs from user-posted ones. Needs at or
// below this id are never persisted.
const MaxSeedNeedID int64 = 4

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func NGOs() []*types.NGO {
	return []*types.NGO{
		{
			ID:             1,
			Name:           "Hope Children's Home",
			Location:       "Mumbai, Maharashtra",
			Verified:       true,
			Description:    "Supporting orphaned children with education and care",
			Image:          "https://via.placeholder.com/300x200?text=Hope+Children",
			OpenNeeds:      3,
			TotalSupported: 150,
		},
		{
			ID:             2,
			Name:           "Sunrise Educational Trust",
			Location:       "Delhi, NCR",
			Verified:       true,
			Description:    "Providing education to underprivileged children",
			Image:          "https://via.placeholder.com/300x200?text=Sunrise+Trust",
			OpenNeeds:      2,
			TotalSupported: 89,
		},
		{
			ID:             3,
			Name:           "Care Foundation",
			Location:       "Bangalore, Karnataka",
			Verified:       true,
			Description:    "Healthcare support for underprivileged communities",
			Image:          "https://via.placeholder.com/300x200?text=Care+Foundation",
			OpenNeeds:      4,
			TotalSupported: 200,
		},
	}
}

func Needs() []*types.Need {
	return []*types.Need{
		{
			ID:          1,
			NGOID:       1,
			Title:       "Winter Clothing for 50 Children",
			Category:    types.CategoryClothing,
			Priority:    types.PriorityUrgent,
			Description: "Urgent need for warm clothes as winter approaches. We need jackets, sweaters, and blankets for children aged 5-15.",
			Quantity:    50,
			Fulfilled:   12,
			Image:       "https://via.placeholder.com/300x200?text=Winter+Clothes",
			DatePosted:  date(2025, time.August, 20),
			Deadline:    date(2025, time.August, 30),
			NGOName:     "Hope Children's Home",
		},
		{
			ID:          2,
			NGOID:       2,
			Title:       "School Books and Supplies",
			Category:    types.CategoryEducation,
			Priority:    types.PriorityHigh,
			Description: "Educational materials needed for new academic year including textbooks, notebooks, and stationery for 100 students.",
			Quantity:    100,
			Fulfilled:   25,
			Image:       "https://via.placeholder.com/300x200?text=School+Books",
			DatePosted:  date(2025, time.August, 19),
			Deadline:    date(2025, time.September, 1),
			NGOName:     "Sunrise Educational Trust",
		},
		{
			ID:          3,
			NGOID:       1,
			Title:       "Medical Supplies for Health Center",
			Category:    types.CategoryMedical,
			Priority:    types.PriorityUrgent,
			Description: "Urgently needed medical supplies including first aid kits, medicines, and basic medical equipment.",
			Quantity:    20,
			Fulfilled:   5,
			Image:       "https://via.placeholder.com/300x200?text=Medical+Supplies",
			DatePosted:  date(2025, time.August, 18),
			Deadline:    date(2025, time.August, 25),
			NGOName:     "Hope Children's Home",
		},
		{
			ID:          4,
			NGOID:       3,
			Title:       "Food Packets for Homeless",
			Category:    types.CategoryFood,
			Priority:    types.PriorityMedium,
			Description: "Nutritious meal packets needed for daily distribution to homeless individuals in the city.",
			Quantity:    200,
			Fulfilled:   150,
			Image:       "https://via.placeholder.com/300x200?text=Food+Packets",
			DatePosted:  date(2025, time.August, 17),
			Deadline:    date(2025, time.August, 27),
			NGOName:     "Care Foundation",
		},
	}
}

func Stats() types.PlatformStats {
	return types.PlatformStats{
		TotalDonations: "₹2.5M+",
		NGOPartners:    "150+",
		Volunteers:     "500+",
		ItemsDonated:   "10,000+",
	}
}
