package model

import "time"

// LoanState describes the loan lifecycle.
type LoanState string

const (
	LoanStateNew      LoanState = "NEW"
	LoanStateApproved LoanState = "APPROVED"
)

// Loan is a priced loan request derived from exactly one Application.
// Monetary fields are frozen once the state reaches APPROVED.
type Loan struct {
	ID            int64
	ApplicationID int64
	UserID        int64
	Principal     int64
	Tenure        int
	InterestRate  int
	EMI           float64
	Interest      float64
	Total         float64
	State         LoanState
	RequestDate   time.Time
	StartDate     *time.Time
}
