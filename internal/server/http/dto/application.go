package dto

import "time"

// ApplyRequest describes a user's loan application payload.
type ApplyRequest struct {
	Amount int64 `json:"amount" binding:"required"`
	Tenure int   `json:"tenure" binding:"required"`
}

// ApplicationResponse describes an open application as seen by agents.
type ApplicationResponse struct {
	ApplicationID int64     `json:"application_id"`
	UserID        int64     `json:"user_id"`
	Amount        int64     `json:"amount"`
	Tenure        int       `json:"tenure"`
	RequestDate   time.Time `json:"request_date"`
}
