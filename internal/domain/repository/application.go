package repository

import (
	"context"

	"github.com/polkiloo/loandesk/internal/domain/model"
)

// ApplicationRepository describes persistence operations with loan applications.
type ApplicationRepository interface {
	Create(ctx context.Context, userID, amount int64, tenure int) (*model.Application, error)
	GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Application, error)
	List(ctx context.Context) ([]model.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Application, error)
}
