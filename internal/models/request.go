package models

import (
	"strings"
	"time"
)

const (
	RequestStatusActive    = "active"
	RequestStatusClosed    = "closed"
	RequestStatusPaused    = "paused"
	RequestStatusCancelled = "cancelled"
)

type Request struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	Customer   struct {
		Name  string `json:"name"`
		Phone string `json:"phone,omitempty"`
		Email string `json:"email,omitempty"`
	} `json:"customer"`
	FromCity        string     `json:"from_city"`
	ToCity          string     `json:"to_city"`
	MoveDate        *time.Time `json:"move_date,omitempty"`
	MoveSize        string     `json:"move_size,omitempty"` // studio|flat|house
	Details         string     `json:"details"`
	Status          string     `json:"status,omitempty"`
	AdminApproved   bool       `json:"admin_approved"`
	AutoCreditCost  int        `json:"auto_credit_cost"`
	AdminCreditCost *int       `json:"admin_credit_cost,omitempty"`
	Archived        bool       `json:"archived"`
	LeadSource      string     `json:"lead_source,omitempty"`
	ContactUnlocked bool       `json:"contact_unlocked,omitempty"`
	OffersCount     int        `json:"offers_count,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

// CreditCost returns the effective cost and whether it was set manually.
func (r Request) CreditCost() (int, bool) {
	if r.AdminCreditCost != nil {
		return *r.AdminCreditCost, true
	}
	return r.AutoCreditCost, false
}

// NormalizeRequestStatus maps a missing status to active. Old rows created
// before the status column existed carry an empty string.
func NormalizeRequestStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return RequestStatusActive
	}
	return status
}

// IsFeedVisible reports whether a request belongs in the public feed.
func IsFeedVisible(r Request) bool {
	return !r.Archived && NormalizeRequestStatus(r.Status) == RequestStatusActive
}

type RequestFeedPage struct {
	Requests   []Request `json:"requests"`
	NextCursor int       `json:"next_cursor,omitempty"`
	HasMore    bool      `json:"has_more"`
}
