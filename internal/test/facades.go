package test

import (
	"context"
	"time"

	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/usecase"
)

// ApplicationFacadeStub provides controllable behaviour for application endpoints.
type ApplicationFacadeStub struct {
	ApplyFn        func(context.Context, model.Actor, int64, int) (*model.Application, error)
	ApplicationsFn func(context.Context, model.Actor) ([]model.Application, error)
}

// Apply delegates to provided function or returns a default application.
func (s ApplicationFacadeStub) Apply(ctx context.Context, actor model.Actor, amount int64, tenure int) (*model.Application, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, actor, amount, tenure)
	}
	return &model.Application{ID: 1, UserID: actor.ID, Amount: amount, Tenure: tenure, CreatedAt: time.Unix(0, 0)}, nil
}

// Applications returns predefined applications.
func (s ApplicationFacadeStub) Applications(ctx context.Context, actor model.Actor) ([]model.Application, error) {
	if s.ApplicationsFn != nil {
		return s.ApplicationsFn(ctx, actor)
	}
	return []model.Application{{ID: 1, UserID: 1, Amount: 10000, Tenure: 12}}, nil
}

// LoanFacadeStub simulates loan lifecycle operations.
type LoanFacadeStub struct {
	RequestFn func(context.Context, model.Actor, int64, int64) (*model.Loan, error)
	ApproveFn func(context.Context, model.Actor, int64, int64) (*model.Loan, error)
	EditFn    func(context.Context, model.Actor, int64, int64, int) (*model.Loan, error)
	LoansFn   func(context.Context, model.Actor) ([]model.Loan, error)
}

// RequestLoan delegates to override or returns a NEW loan.
func (s LoanFacadeStub) RequestLoan(ctx context.Context, actor model.Actor, applicationID, userID int64) (*model.Loan, error) {
	if s.RequestFn != nil {
		return s.RequestFn(ctx, actor, applicationID, userID)
	}
	return &model.Loan{ID: 1, ApplicationID: applicationID, UserID: userID, State: model.LoanStateNew}, nil
}

// ApproveLoan delegates to override or returns an APPROVED loan.
func (s LoanFacadeStub) ApproveLoan(ctx context.Context, actor model.Actor, loanID, userID int64) (*model.Loan, error) {
	if s.ApproveFn != nil {
		return s.ApproveFn(ctx, actor, loanID, userID)
	}
	now := time.Unix(0, 0)
	return &model.Loan{ID: loanID, UserID: userID, State: model.LoanStateApproved, StartDate: &now}, nil
}

// EditLoan delegates to override or returns the repriced loan.
func (s LoanFacadeStub) EditLoan(ctx context.Context, actor model.Actor, loanID, amount int64, tenure int) (*model.Loan, error) {
	if s.EditFn != nil {
		return s.EditFn(ctx, actor, loanID, amount, tenure)
	}
	return &model.Loan{ID: loanID, Principal: amount, Tenure: tenure, State: model.LoanStateNew}, nil
}

// Loans returns preconfigured loans.
func (s LoanFacadeStub) Loans(ctx context.Context, actor model.Actor) ([]model.Loan, error) {
	if s.LoansFn != nil {
		return s.LoansFn(ctx, actor)
	}
	return []model.Loan{{ID: 1, UserID: actor.ID, State: model.LoanStateNew}}, nil
}

// UserFacadeStub simulates user administration operations.
type UserFacadeStub struct {
	UsersFn   func(context.Context, model.Actor) ([]model.User, error)
	ProfileFn func(context.Context, model.Actor, int64) (*usecase.UserProfile, error)
	PromoteFn func(context.Context, model.Actor, int64) error
	DeleteFn  func(context.Context, model.Actor, int64) error
}

// Users returns preconfigured users.
func (s UserFacadeStub) Users(ctx context.Context, actor model.Actor) ([]model.User, error) {
	if s.UsersFn != nil {
		return s.UsersFn(ctx, actor)
	}
	return []model.User{{ID: 1, Login: "user", Role: model.RoleUser}}, nil
}

// UserProfile returns preconfigured profile.
func (s UserFacadeStub) UserProfile(ctx context.Context, actor model.Actor, id int64) (*usecase.UserProfile, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, actor, id)
	}
	return &usecase.UserProfile{User: model.User{ID: id, Login: "user", Role: model.RoleUser}}, nil
}

// PromoteUser executes override when provided.
func (s UserFacadeStub) PromoteUser(ctx context.Context, actor model.Actor, id int64) error {
	if s.PromoteFn != nil {
		return s.PromoteFn(ctx, actor, id)
	}
	return nil
}

// DeleteUser executes override when provided.
func (s UserFacadeStub) DeleteUser(ctx context.Context, actor model.Actor, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	return nil
}

// DeskFacadeStub aggregates facade dependencies for HTTP layer tests.
type DeskFacadeStub struct {
	AuthFacadeStub
	ApplicationFacadeStub
	LoanFacadeStub
	UserFacadeStub
}
