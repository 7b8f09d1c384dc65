package domain

import "time"

// Customer is a contact record owned by exactly one user. OwnerID is set at
// creation from the authenticated caller and never changes afterwards.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company,omitempty"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerUpdate carries the replacement field values for an update. All four
// fields are written as a unit; partial patches are not supported.
type CustomerUpdate struct {
	Name    string
	Email   string
	Phone   string
	Company string
}
