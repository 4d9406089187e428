package model

import "time"

// Application is a user's informal loan interest record. It survives as a
// historical record after an agent converts it into a Loan.
type Application struct {
	ID        int64
	UserID    int64
	Amount    int64
	Tenure    int
	CreatedAt time.Time
}
