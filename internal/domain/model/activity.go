// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category identifies one of the fixed fan spending buckets.
type Category string

// The five main categories plus the catch-all bucket.
const (
	CategoryConcerts      Category = "concerts"
	CategoryAlbums        Category = "albums"
	CategoryMerch         Category = "merch"
	CategoryEvents        Category = "events"
	CategorySubscriptions Category = "subscriptions"
	CategoryOther         Category = "other"
)

// MainCategories lists the five budget-bearing categories in their fixed
// priority order. The order doubles as the deterministic tie-break used by
// the categorizer and the business rules: earlier entries win ties.
var MainCategories = []Category{
	CategoryConcerts,
	CategoryAlbums,
	CategoryEvents,
	CategoryMerch,
	CategorySubscriptions,
}

// ParseCategory maps a raw string to a Category. Unrecognized values fold
// into CategoryOther rather than failing.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryConcerts, CategoryAlbums, CategoryMerch, CategoryEvents, CategorySubscriptions:
		return Category(s)
	default:
		return CategoryOther
	}
}

// IsMain reports whether the category is one of the five budget-bearing
// categories.
func (c Category) IsMain() bool {
	for _, m := range MainCategories {
		if c == m {
			return true
		}
	}
	return false
}

// DisplayName returns the user-facing label for the category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryConcerts:
		return "Concerts & Shows"
	case CategoryAlbums:
		return "Albums & Photocards"
	case CategoryMerch:
		return "Official Merch"
	case CategoryEvents:
		return "Fan Events"
	case CategorySubscriptions:
		return "Subscriptions & Apps"
	default:
		return "Other"
	}
}

// TieBreakRank returns the category's position in the fixed priority order.
// Lower ranks win ties. Categories outside the main five sort last.
func (c Category) TieBreakRank() int {
	for i, m := range MainCategories {
		if c == m {
			return i
		}
	}
	return len(MainCategories)
}

// PriorityLevel classifies a category's current importance to the budget.
type PriorityLevel string

// Priority levels, highest first.
const (
	PriorityHigh   PriorityLevel = "high"
	PriorityMedium PriorityLevel = "medium"
	PriorityLow    PriorityLevel = "low"
)

// CategoryPriorities maps each main category to its priority level.
// A valid value always contains exactly the five main categories.
type CategoryPriorities map[Category]PriorityLevel

// CountLevel returns how many categories currently sit at the given level.
func (p CategoryPriorities) CountLevel(level PriorityLevel) int {
	n := 0
	for _, l := range p {
		if l == level {
			n++
		}
	}
	return n
}

// Activity represents a single recorded fan purchase or event. Instances
// are immutable once constructed; they arrive from an external
// purchase-entry flow and carry whatever data that flow captured.
type Activity struct {
	ID          string    `json:"id"`
	ArtistName  string    `json:"artist_name,omitempty"`
	Category    *Category `json:"category,omitempty"` // explicit category if the user picked one
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Amount      float64   `json:"amount,omitempty"` // missing amounts are zero
	Timestamp   time.Time `json:"timestamp"`
}

// NewActivity builds an activity with a fresh ID.
func NewActivity(artist, title string, amount float64, ts time.Time) Activity {
	return Activity{
		ID:         uuid.New().String(),
		ArtistName: artist,
		Title:      title,
		Amount:     amount,
		Timestamp:  ts,
	}
}

// WithCategory returns a copy of the activity carrying an explicit category.
func (a Activity) WithCategory(c Category) Activity {
	a.Category = &c
	return a
}

// Artist returns the artist name, falling back to "Unknown" when absent.
func (a Activity) Artist() string {
	if a.ArtistName == "" {
		return "Unknown"
	}
	return a.ArtistName
}
