package domain

import "time"

// User represents a registered marketplace user. Email is the unique
// lookup key.
type User struct {
	ID        string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}
