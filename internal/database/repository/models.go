package repository

import "time"

// Event kinds recorded against a café.
const (
	EventAdopt = "adopt"
	EventVisit = "visit"
)

// Event represents a cafe_events row.
type Event struct {
	ID        string
	CafeID    string
	Kind      string
	CreatedAt time.Time
}
