package domain

import "time"

// Lead is a quiz respondent captured for follow-up. Leads are keyed by
// normalized email; repeat submissions update the contact fields.
type Lead struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
