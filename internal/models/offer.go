package models

import (
	"strings"
	"time"
)

const (
	OfferStatusPending  = "pending"
	OfferStatusAccepted = "accepted"
	OfferStatusDeclined = "declined"
)

type Offer struct {
	ID           int        `json:"id"`
	RequestID    int        `json:"request_id"`
	CompanyID    int        `json:"company_id,omitempty"`
	CompanyName  string     `json:"company_name"`
	Price        float64    `json:"price"`
	Message      string     `json:"message"`
	ProposedDate *time.Time `json:"proposed_date,omitempty"`
	Status       string     `json:"status"`
	ChatID       int        `json:"chat_id,omitempty"`
	Request      *Request   `json:"request,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// NormalizeOfferStatus collapses the legacy "rejected" spelling into
// "declined" so filters compare against a single canonical term.
func NormalizeOfferStatus(status string) string {
	status = strings.TrimSpace(strings.ToLower(status))
	switch status {
	case "":
		return OfferStatusPending
	case "rejected":
		return OfferStatusDeclined
	default:
		return status
	}
}

type OfferUpdate struct {
	Price        float64    `json:"price"`
	Message      string     `json:"message"`
	ProposedDate *time.Time `json:"proposed_date,omitempty"`
}
