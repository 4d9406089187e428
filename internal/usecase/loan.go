package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/domain/repository"
	"github.com/polkiloo/loandesk/internal/finance"
)

// LoanUseCase drives the loan lifecycle: request, approve, edit, list.
type LoanUseCase struct {
	applications repository.ApplicationRepository
	loans        repository.LoanRepository
}

// NewLoanUseCase constructs LoanUseCase.
func NewLoanUseCase(applications repository.ApplicationRepository, loans repository.LoanRepository) *LoanUseCase {
	return &LoanUseCase{applications: applications, loans: loans}
}

// Request converts an application into a priced loan in state NEW. The
// application is looked up by (id, owner) pair; at most one loan may ever
// reference an application, a second request fails with ErrAlreadyRequested.
func (u *LoanUseCase) Request(ctx context.Context, actor model.Actor, applicationID, userID int64) (*model.Loan, error) {
	if !Allowed(actor.Role, ActionRequestLoan) {
		return nil, domainErrors.ErrPermissionDenied
	}
	if applicationID <= 0 || userID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	appl, err := u.applications.GetByIDAndOwner(ctx, applicationID, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidApplication
		}
		return nil, err
	}

	rate := finance.RateForTenure(appl.Tenure)
	quote := finance.Compute(appl.Amount, float64(rate), appl.Tenure)

	loan := &model.Loan{
		ApplicationID: appl.ID,
		UserID:        appl.UserID,
		Principal:     appl.Amount,
		Tenure:        appl.Tenure,
		InterestRate:  rate,
		EMI:           quote.EMI,
		Interest:      quote.Interest,
		Total:         quote.Total,
		State:         model.LoanStateNew,
		RequestDate:   time.Now().UTC(),
	}

	created, err := u.loans.Create(ctx, loan)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, domainErrors.ErrAlreadyRequested
		}
		return nil, err
	}
	return created, nil
}

// Approve moves a NEW loan to APPROVED and stamps its start date. The loan is
// looked up by (id, owner) pair. Re-approval is reported, not silently absorbed.
func (u *LoanUseCase) Approve(ctx context.Context, actor model.Actor, loanID, userID int64) (*model.Loan, error) {
	if !Allowed(actor.Role, ActionApproveLoan) {
		return nil, domainErrors.ErrPermissionDenied
	}
	if loanID <= 0 || userID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	loan, err := u.loans.GetByIDAndOwner(ctx, loanID, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidLoan
		}
		return nil, err
	}

	switch loan.State {
	case model.LoanStateNew:
		return u.loans.Approve(ctx, loan.ID)
	case model.LoanStateApproved:
		return nil, domainErrors.ErrAlreadyApproved
	default:
		return nil, domainErrors.ErrCannotApprove
	}
}

// Edit reprices an unapproved loan in place from new amount/tenure. The loan is
// looked up by id alone, not scoped to an owner. Approved terms are immutable.
func (u *LoanUseCase) Edit(ctx context.Context, actor model.Actor, loanID, amount int64, tenure int) (*model.Loan, error) {
	if !Allowed(actor.Role, ActionEditLoan) {
		return nil, domainErrors.ErrPermissionDenied
	}
	if loanID <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	loan, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidLoan
		}
		return nil, err
	}
	if loan.State == model.LoanStateApproved {
		return nil, domainErrors.ErrLoanLocked
	}
	if amount <= 0 || tenure <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}

	rate := finance.RateForTenure(tenure)
	quote := finance.Compute(amount, float64(rate), tenure)

	loan.Principal = amount
	loan.Tenure = tenure
	loan.InterestRate = rate
	loan.EMI = quote.EMI
	loan.Interest = quote.Interest
	loan.Total = quote.Total
	loan.RequestDate = time.Now().UTC()

	if err := u.loans.UpdateTerms(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// List returns loans visible to the caller: plain users see their own,
// agents and admins see everything.
func (u *LoanUseCase) List(ctx context.Context, actor model.Actor) ([]model.Loan, error) {
	if !Allowed(actor.Role, ActionListLoans) {
		return nil, domainErrors.ErrPermissionDenied
	}
	if SeesAllLoans(actor.Role) {
		return u.loans.List(ctx)
	}
	return u.loans.ListByUser(ctx, actor.ID)
}
