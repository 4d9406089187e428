package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/domain/repository"
)

// ApplicationUseCase handles loan applications submitted by end users.
type ApplicationUseCase struct {
	applications repository.ApplicationRepository
}

// NewApplicationUseCase constructs ApplicationUseCase.
func NewApplicationUseCase(applications repository.ApplicationRepository) *ApplicationUseCase {
	return &ApplicationUseCase{applications: applications}
}

// Apply records a new application owned by the caller. The owner is always
// the caller; it is not negotiable through the input.
func (u *ApplicationUseCase) Apply(ctx context.Context, actor model.Actor, amount int64, tenure int) (*model.Application, error) {
	if !Allowed(actor.Role, ActionApply) {
		return nil, domainErrors.ErrPermissionDenied
	}
	if amount <= 0 || tenure <= 0 {
		return nil, domainErrors.ErrInvalidInput
	}
	return u.applications.Create(ctx, actor.ID, amount, tenure)
}

// List returns all applications for agents browsing open requests.
func (u *ApplicationUseCase) List(ctx context.Context, actor model.Actor) ([]model.Application, error) {
	if !Allowed(actor.Role, ActionViewApplications) {
		return nil, domainErrors.ErrPermissionDenied
	}
	return u.applications.List(ctx)
}
