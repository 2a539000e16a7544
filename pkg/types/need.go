package types

import (
	"time"
)

type NeedCategory string

const (
	CategoryClothing  NeedCategory = "Clothing"
	CategoryEducation NeedCategory = "Education"
	CategoryMedical   NeedCategory = "Medical"
	CategoryFood      NeedCategory = "Food"
	CategoryShelter   NeedCategory = "Shelter"
	CategoryOther     NeedCategory = "Other"
)

func NeedCategories() []NeedCategory {
	return []NeedCategory{
		CategoryClothing,
		CategoryEducation,
		CategoryMedical,
		CategoryFood,
		CategoryShelter,
		CategoryOther,
	}
}

// ParseNeedCategory normalizes a raw category value at the boundary.
func ParseNeedCategory(raw string) (NeedCategory, bool) {
	for _, c := range NeedCategories() {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

type NeedPriority string

const (
	PriorityUrgent NeedPriority = "Urgent"
	PriorityHigh   NeedPriority = "High"
	PriorityMedium NeedPriority = "Medium"
	PriorityLow    NeedPriority = "Low"
)

func NeedPriorities() []NeedPriority {
	return []NeedPriority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

func ParseNeedPriority(raw string) (NeedPriority, bool) {
	for _, p := range NeedPriorities() {
		if string(p) == raw {
			return p, true
		}
	}
	return "", false
}

// Need is an NGO request for a quantity of items or support. Seed needs carry
// ids 1..4; user-posted needs get id = unix milliseconds at creation.
type Need struct {
	ID          int64        `json:"id"`
	NGOID       int64        `json:"ngoId"`
	Title       string       `json:"title"`
	Category    NeedCategory `json:"category"`
	Priority    NeedPriority `json:"priority"`
	Description string       `json:"description"`
	Quantity    int          `json:"quantity"`
	Fulfilled   int          `json:"fulfilled"`
	Image       string       `json:"image,omitempty"`
	DatePosted  time.Time    `json:"datePosted"`
	Deadline    time.Time    `json:"deadline"`

	// Display fallback when NGOID does not resolve.
	NGOName string `json:"ngoName"`
}

// Progress is the fulfillment percentage in [0, 100]. Recomputed on every
// call, never stored.
func (n *Need) Progress() float64 {
	if n.Quantity <= 0 {
		return 0
	}
	return float64(n.Fulfilled) / float64(n.Quantity) * 100
}

func (n *Need) Remaining() int {
	return n.Quantity - n.Fulfilled
}

func (n *Need) FullyFunded() bool {
	return n.Fulfilled >= n.Quantity
}

// NeedFilter narrows ListNeeds results. Zero-valued fields apply no
// constraint.
type NeedFilter struct {
	Category NeedCategory
	Priority NeedPriority
	Search   string
}

func (f NeedFilter) IsZero() bool {
	return f.Category == "" && f.Priority == "" && f.Search == ""
}

// PostNeedInput carries the fields of a user-submitted need.
type PostNeedInput struct {
	NGOID       int64  `form:"ngo_id"`
	Title       string `form:"title"`
	Category    string `form:"category"`
	Priority    string `form:"priority"`
	Description string `form:"description"`
	Quantity    int    `form:"quantity"`
	Deadline    string `form:"deadline"`
	NGOName     string `form:"ngo_name"`
}
