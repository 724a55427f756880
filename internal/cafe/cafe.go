// Package cafe holds the entity types rendered on the café map.
package cafe

import (
	"strings"
	"time"
)

// Category is the motif of a cafferot.
type Category string

const (
	CategoryCoffee  Category = "coffee"
	CategoryBean    Category = "bean"
	CategorySweets  Category = "sweets"
	CategoryParfait Category = "parfait"
	CategoryOther   Category = "other"
)

// ParseCategory normalizes free text to a known category, defaulting to other.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryCoffee, CategoryBean, CategorySweets, CategoryParfait:
		return c
	default:
		return CategoryOther
	}
}

// Cafferot is an item a café puts on display.
type Cafferot struct {
	ID            string
	Name          string
	Category      Category
	ImageData     string
	AudioData     *string
	AuthorID      string
	AdoptionCount int
	Value         int
	CreatedAt     time.Time
}

// Cafe is a map entity. The map only reads it.
type Cafe struct {
	ID        string
	OwnerID   string
	Name      string
	Level     int
	Displayed []Cafferot
}

// SubItemCount is the number of displayed cafferots.
func (c Cafe) SubItemCount() int { return len(c.Displayed) }
