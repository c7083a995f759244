package domain

import "time"

// User is a registered account. PasswordHash holds the encoded
// salt:digest credential and is never serialized to clients.
type User struct {
	ID                     string    `json:"id"`
	Email                  string    `json:"email"`
	PasswordHash           string    `json:"-"`
	FirstName              string    `json:"firstName"`
	LastName               string    `json:"lastName"`
	DateOfBirth            string    `json:"dateOfBirth,omitempty"`
	Country                string    `json:"country,omitempty"`
	Gender                 string    `json:"gender,omitempty"`
	NewsletterSubscription bool      `json:"newsletterSubscription"`
	CreatedAt              time.Time `json:"createdAt"`
}
