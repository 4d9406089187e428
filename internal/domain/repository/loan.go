package repository

import (
	"context"

	"github.com/polkiloo/loandesk/internal/domain/model"
)

// LoanRepository describes persistence operations with loans.
//
// Create must guarantee at most one loan per application: the race between
// concurrent requests for the same application is settled by the datastore,
// not by engine memory.
type LoanRepository interface {
	Create(ctx context.Context, loan *model.Loan) (*model.Loan, error)
	GetByID(ctx context.Context, id int64) (*model.Loan, error)
	GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Loan, error)
	List(ctx context.Context) ([]model.Loan, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Loan, error)
	Approve(ctx context.Context, id int64) (*model.Loan, error)
	UpdateTerms(ctx context.Context, loan *model.Loan) error
}
