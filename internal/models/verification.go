package models

import "time"

const (
	VerificationStatusPending  = "pending"
	VerificationStatusApproved = "approved"
	VerificationStatusRejected = "rejected"
)

type Verification struct {
	ID           int        `json:"id"`
	CompanyID    int        `json:"company_id"`
	DocumentPath string     `json:"document_path"`
	Status       string     `json:"status"`
	ReviewedBy   *int       `json:"reviewed_by,omitempty"`
	ReviewedAt   *time.Time `json:"reviewed_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type VerificationTransition struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
