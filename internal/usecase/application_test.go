package usecase_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/polkiloo/loandesk/internal/usecase"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	testhelpers "github.com/polkiloo/loandesk/internal/test"
)

func TestApplicationApplyOwnerIsCaller(t *testing.T) {
	repo := testhelpers.NewApplicationRepositoryStub()
	uc := NewApplicationUseCase(repo)

	appl, err := uc.Apply(context.Background(), model.Actor{ID: 7, Role: model.RoleUser}, 10000, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appl.UserID != 7 {
		t.Fatalf("application owner = %d, want caller id 7", appl.UserID)
	}
	if appl.Amount != 10000 || appl.Tenure != 12 {
		t.Fatalf("unexpected application %+v", appl)
	}
}

func TestApplicationApplyValidation(t *testing.T) {
	repo := testhelpers.NewApplicationRepositoryStub()
	uc := NewApplicationUseCase(repo)
	actor := model.Actor{ID: 1, Role: model.RoleUser}

	cases := []struct {
		amount int64
		tenure int
	}{
		{0, 12},
		{-5, 12},
		{10000, 0},
		{10000, -1},
	}
	for _, tc := range cases {
		if _, err := uc.Apply(context.Background(), actor, tc.amount, tc.tenure); !errors.Is(err, domainErrors.ErrInvalidInput) {
			t.Errorf("Apply(amount=%d, tenure=%d) err = %v, want invalid input", tc.amount, tc.tenure, err)
		}
	}
	if len(repo.Applications) != 0 {
		t.Fatalf("validation failures must not persist anything, stored %d", len(repo.Applications))
	}
}

func TestApplicationListAgentOnly(t *testing.T) {
	repo := testhelpers.NewApplicationRepositoryStub()
	if _, err := repo.Create(context.Background(), 1, 5000, 6); err != nil {
		t.Fatalf("seed: %v", err)
	}
	uc := NewApplicationUseCase(repo)

	if _, err := uc.List(context.Background(), model.Actor{ID: 1, Role: model.RoleUser}); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("user list err = %v, want permission denied", err)
	}
	if _, err := uc.List(context.Background(), model.Actor{ID: 2, Role: model.RoleAdmin}); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("admin list err = %v, want permission denied", err)
	}

	applications, err := uc.List(context.Background(), model.Actor{ID: 3, Role: model.RoleAgent})
	if err != nil {
		t.Fatalf("agent list: %v", err)
	}
	if len(applications) != 1 {
		t.Fatalf("expected 1 application, got %d", len(applications))
	}
}
