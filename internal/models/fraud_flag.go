package models

import "time"

const (
	FlagStatusPending   = "pending"
	FlagStatusConfirmed = "confirmed"
	FlagStatusDismissed = "dismissed"
)

type FraudFlag struct {
	ID         int        `json:"id"`
	RequestID  int        `json:"request_id"`
	Reason     string     `json:"reason"`
	Severity   string     `json:"severity"` // low|medium|high
	Status     string     `json:"status"`
	ReviewedBy *int       `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type FlagTransition struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
