package models

import "time"

// Unlock is an existence record: its presence means the company may see the
// request's contact fields. Created once, never mutated or deleted.
type Unlock struct {
	ID        int       `json:"id"`
	CompanyID int       `json:"company_id"`
	RequestID int       `json:"request_id"`
	Cost      int       `json:"cost"`
	CreatedAt time.Time `json:"created_at"`
}

type UnlockRequest struct {
	RequestID int  `json:"request_id"`
	Confirm   bool `json:"confirm"`
}
