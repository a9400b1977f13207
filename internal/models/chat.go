package models

import "time"

// Chat binds one request/offer pair to a message thread between the
// request's customer and the offering company.
type Chat struct {
	ID         int       `json:"id"`
	RequestID  int       `json:"request_id"`
	OfferID    int       `json:"offer_id"`
	CustomerID int       `json:"customer_id"`
	CompanyID  int       `json:"company_id"`
	CreatedAt  time.Time `json:"created_at"`

	LastMessage   string     `json:"last_message,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}
