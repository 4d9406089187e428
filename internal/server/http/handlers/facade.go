package handlers

import (
	"context"

	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
	ActorByID(ctx context.Context, id int64) (model.Actor, error)
}

// ApplicationFacade encapsulates application operations exposed via HTTP.
type ApplicationFacade interface {
	Apply(ctx context.Context, actor model.Actor, amount int64, tenure int) (*model.Application, error)
	Applications(ctx context.Context, actor model.Actor) ([]model.Application, error)
}

// LoanFacade encapsulates loan lifecycle operations exposed via HTTP.
type LoanFacade interface {
	RequestLoan(ctx context.Context, actor model.Actor, applicationID, userID int64) (*model.Loan, error)
	ApproveLoan(ctx context.Context, actor model.Actor, loanID, userID int64) (*model.Loan, error)
	EditLoan(ctx context.Context, actor model.Actor, loanID, amount int64, tenure int) (*model.Loan, error)
	Loans(ctx context.Context, actor model.Actor) ([]model.Loan, error)
}

// UserFacade provides user administration operations.
type UserFacade interface {
	Users(ctx context.Context, actor model.Actor) ([]model.User, error)
	UserProfile(ctx context.Context, actor model.Actor, id int64) (*usecase.UserProfile, error)
	PromoteUser(ctx context.Context, actor model.Actor, id int64) error
	DeleteUser(ctx context.Context, actor model.Actor, id int64) error
}

// DeskFacade aggregates the full set of operations used across handlers.
type DeskFacade interface {
	AuthFacade
	ApplicationFacade
	LoanFacade
	UserFacade
}
