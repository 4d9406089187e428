package dto

import "time"

// RequestLoanRequest converts an application into a loan.
type RequestLoanRequest struct {
	ApplicationID int64 `json:"application_id" binding:"required"`
	UserID        int64 `json:"user_id" binding:"required"`
}

// ApproveLoanRequest approves a loan on behalf of its owner.
type ApproveLoanRequest struct {
	LoanID int64 `json:"loan_id" binding:"required"`
	UserID int64 `json:"user_id" binding:"required"`
}

// EditLoanRequest reprices an unapproved loan.
type EditLoanRequest struct {
	Amount int64 `json:"amount" binding:"required"`
	Tenure int   `json:"tenure" binding:"required"`
}

// LoanResponse describes a loan with its frozen monetary terms.
type LoanResponse struct {
	ID            int64      `json:"id"`
	ApplicationID int64      `json:"application_id"`
	UserID        int64      `json:"user_id"`
	Principal     int64      `json:"principal"`
	Tenure        int        `json:"tenure"`
	InterestRate  int        `json:"interest_rate"`
	EMI           float64    `json:"emi"`
	Interest      float64    `json:"interest"`
	Total         float64    `json:"total"`
	State         string     `json:"loan_state"`
	RequestDate   time.Time  `json:"request_date"`
	StartDate     *time.Time `json:"start_date"`
}
