package app

import (
	"context"

	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/usecase"
)

// Facade aggregates the use cases behind the single surface consumed by the
// HTTP layer: it is both the caller-context collaborator (token to actor) and
// the entry point for every lifecycle action.
type Facade struct {
	auth         *usecase.AuthUseCase
	applications *usecase.ApplicationUseCase
	loans        *usecase.LoanUseCase
	users        *usecase.UserUseCase
}

// NewFacade constructs Facade.
func NewFacade(auth *usecase.AuthUseCase, applications *usecase.ApplicationUseCase, loans *usecase.LoanUseCase, users *usecase.UserUseCase) *Facade {
	return &Facade{auth: auth, applications: applications, loans: loans, users: users}
}

func (f *Facade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *Facade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *Facade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *Facade) ActorByID(ctx context.Context, id int64) (model.Actor, error) {
	return f.auth.ActorByID(ctx, id)
}

func (f *Facade) EnsureAdmin(ctx context.Context, login, password string) error {
	return f.auth.EnsureAdmin(ctx, login, password)
}

func (f *Facade) Apply(ctx context.Context, actor model.Actor, amount int64, tenure int) (*model.Application, error) {
	return f.applications.Apply(ctx, actor, amount, tenure)
}

func (f *Facade) Applications(ctx context.Context, actor model.Actor) ([]model.Application, error) {
	return f.applications.List(ctx, actor)
}

func (f *Facade) RequestLoan(ctx context.Context, actor model.Actor, applicationID, userID int64) (*model.Loan, error) {
	return f.loans.Request(ctx, actor, applicationID, userID)
}

func (f *Facade) ApproveLoan(ctx context.Context, actor model.Actor, loanID, userID int64) (*model.Loan, error) {
	return f.loans.Approve(ctx, actor, loanID, userID)
}

func (f *Facade) EditLoan(ctx context.Context, actor model.Actor, loanID, amount int64, tenure int) (*model.Loan, error) {
	return f.loans.Edit(ctx, actor, loanID, amount, tenure)
}

func (f *Facade) Loans(ctx context.Context, actor model.Actor) ([]model.Loan, error) {
	return f.loans.List(ctx, actor)
}

func (f *Facade) Users(ctx context.Context, actor model.Actor) ([]model.User, error) {
	return f.users.List(ctx, actor)
}

func (f *Facade) UserProfile(ctx context.Context, actor model.Actor, id int64) (*usecase.UserProfile, error) {
	return f.users.Get(ctx, actor, id)
}

func (f *Facade) PromoteUser(ctx context.Context, actor model.Actor, id int64) error {
	return f.users.Promote(ctx, actor, id)
}

func (f *Facade) DeleteUser(ctx context.Context, actor model.Actor, id int64) error {
	return f.users.Delete(ctx, actor, id)
}
