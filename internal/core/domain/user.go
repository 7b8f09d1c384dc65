package domain

import "time"

// User models a registered account. Each user owns a disjoint set of
// customer records; nothing outside that set is ever visible to them.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Gender       string    `json:"gender,omitempty"`
	Location     string    `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
