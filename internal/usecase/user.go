package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/domain/repository"
)

// UserProfile is a user together with the ids of their applications and loans.
type UserProfile struct {
	User           model.User
	ApplicationIDs []int64
	LoanIDs        []int64
}

// UserUseCase covers user administration performed by agents and admins.
type UserUseCase struct {
	users        repository.UserRepository
	applications repository.ApplicationRepository
	loans        repository.LoanRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository, applications repository.ApplicationRepository, loans repository.LoanRepository) *UserUseCase {
	return &UserUseCase{users: users, applications: applications, loans: loans}
}

// List returns all users.
func (u *UserUseCase) List(ctx context.Context, actor model.Actor) ([]model.User, error) {
	if !Allowed(actor.Role, ActionListUsers) {
		return nil, domainErrors.ErrPermissionDenied
	}
	return u.users.List(ctx)
}

// Get returns a single user with their application and loan ids.
func (u *UserUseCase) Get(ctx context.Context, actor model.Actor, id int64) (*UserProfile, error) {
	if !Allowed(actor.Role, ActionViewUser) {
		return nil, domainErrors.ErrPermissionDenied
	}

	usr, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	applications, err := u.applications.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	loans, err := u.loans.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &UserProfile{User: *usr}
	for _, a := range applications {
		profile.ApplicationIDs = append(profile.ApplicationIDs, a.ID)
	}
	for _, l := range loans {
		profile.LoanIDs = append(profile.LoanIDs, l.ID)
	}
	return profile, nil
}

// Promote grants the agent role to a user.
func (u *UserUseCase) Promote(ctx context.Context, actor model.Actor, id int64) error {
	if !Allowed(actor.Role, ActionPromoteUser) {
		return domainErrors.ErrPermissionDenied
	}
	if _, err := u.users.GetByID(ctx, id); err != nil {
		return err
	}
	return u.users.SetRole(ctx, id, model.RoleAgent)
}

// Delete removes a user.
func (u *UserUseCase) Delete(ctx context.Context, actor model.Actor, id int64) error {
	if !Allowed(actor.Role, ActionDeleteUser) {
		return domainErrors.ErrPermissionDenied
	}
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return domainErrors.ErrNotFound
		}
		return err
	}
	return nil
}
