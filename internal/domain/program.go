package domain

import "time"

// Program represents a funding program listed in the catalog.
type Program struct {
	ID          string
	Title       string
	Type        string
	Description string
	Price       float64
	CreatedAt   time.Time
}
