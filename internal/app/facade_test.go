package app

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	testhelpers "github.com/polkiloo/loandesk/internal/test"
	"github.com/polkiloo/loandesk/internal/usecase"
)

func newFacade() (*Facade, *testhelpers.UserRepositoryStub, *testhelpers.ApplicationRepositoryStub, *testhelpers.LoanRepositoryStub) {
	userRepo := testhelpers.NewUserRepositoryStub()
	strategy := testhelpers.StrategyStub{ParseFn: func(string) (int64, error) { return 99, nil }}
	authUC := usecase.NewAuthUseCase(userRepo, testhelpers.HasherStub{}, strategy)

	applicationRepo := testhelpers.NewApplicationRepositoryStub()
	applicationUC := usecase.NewApplicationUseCase(applicationRepo)

	loanRepo := testhelpers.NewLoanRepositoryStub()
	loanUC := usecase.NewLoanUseCase(applicationRepo, loanRepo)

	userUC := usecase.NewUserUseCase(userRepo, applicationRepo, loanRepo)

	facade := NewFacade(authUC, applicationUC, loanUC, userUC)
	return facade, userRepo, applicationRepo, loanRepo
}

func TestFacadeAuth(t *testing.T) {
	facade, users, _, _ := newFacade()
	token, err := facade.Register(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := users.GetByLogin(context.Background(), "user")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.Role != model.RoleUser {
		t.Fatalf("unexpected stored role %q", stored.Role)
	}

	token, err = facade.Authenticate(context.Background(), "user", "pass")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	id, err := facade.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token returned error: %v", err)
	}
	if id != 99 {
		t.Fatalf("expected id 99, got %d", id)
	}

	actor, err := facade.ActorByID(context.Background(), stored.ID)
	if err != nil || actor.ID != stored.ID {
		t.Fatalf("unexpected actor %+v err=%v", actor, err)
	}
}

func TestFacadeEnsureAdmin(t *testing.T) {
	facade, users, _, _ := newFacade()
	if err := facade.EnsureAdmin(context.Background(), "root", "rootpw"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	stored, err := users.GetByLogin(context.Background(), "root")
	if err != nil || stored.Role != model.RoleAdmin {
		t.Fatalf("unexpected admin %+v err=%v", stored, err)
	}
}

func TestFacadeLifecycle(t *testing.T) {
	facade, _, _, _ := newFacade()

	user := model.Actor{ID: 1, Role: model.RoleUser}
	agent := model.Actor{ID: 2, Role: model.RoleAgent}
	admin := model.Actor{ID: 3, Role: model.RoleAdmin}

	appl, err := facade.Apply(context.Background(), user, 10000, 12)
	if err != nil {
		t.Fatalf("apply returned error: %v", err)
	}

	listed, err := facade.Applications(context.Background(), agent)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected applications %v err=%v", listed, err)
	}

	loan, err := facade.RequestLoan(context.Background(), agent, appl.ID, user.ID)
	if err != nil {
		t.Fatalf("request loan returned error: %v", err)
	}
	if loan.State != model.LoanStateNew || loan.EMI != 888.49 {
		t.Fatalf("unexpected loan %+v", loan)
	}

	approved, err := facade.ApproveLoan(context.Background(), admin, loan.ID, user.ID)
	if err != nil {
		t.Fatalf("approve loan returned error: %v", err)
	}
	if approved.State != model.LoanStateApproved {
		t.Fatalf("unexpected state %s", approved.State)
	}

	if _, err := facade.EditLoan(context.Background(), agent, loan.ID, 20000, 30); !errors.Is(err, domainErrors.ErrLoanLocked) {
		t.Fatalf("expected loan locked, got %v", err)
	}

	loans, err := facade.Loans(context.Background(), user)
	if err != nil || len(loans) != 1 {
		t.Fatalf("unexpected loans %v err=%v", loans, err)
	}
}

func TestFacadeUserAdministration(t *testing.T) {
	facade, users, _, _ := newFacade()
	created, _ := users.Create(context.Background(), "alice", "h", model.RoleUser)
	agent := model.Actor{ID: 99, Role: model.RoleAgent}

	listed, err := facade.Users(context.Background(), agent)
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected users %v err=%v", listed, err)
	}

	profile, err := facade.UserProfile(context.Background(), agent, created.ID)
	if err != nil || profile.User.Login != "alice" {
		t.Fatalf("unexpected profile %+v err=%v", profile, err)
	}

	if err := facade.PromoteUser(context.Background(), agent, created.ID); err != nil {
		t.Fatalf("promote returned error: %v", err)
	}
	if users.ByID[created.ID].Role != model.RoleAgent {
		t.Fatalf("role not updated: %s", users.ByID[created.ID].Role)
	}

	if err := facade.DeleteUser(context.Background(), agent, created.ID); err != nil {
		t.Fatalf("delete returned error: %v", err)
	}
	if _, ok := users.ByID[created.ID]; ok {
		t.Fatal("user not removed")
	}
}
