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

var (
	agent = model.Actor{ID: 100, Role: model.RoleAgent}
	admin = model.Actor{ID: 200, Role: model.RoleAdmin}
)

func newLoanFixture(t *testing.T) (*LoanUseCase, *testhelpers.ApplicationRepositoryStub, *testhelpers.LoanRepositoryStub) {
	t.Helper()
	applications := testhelpers.NewApplicationRepositoryStub()
	loans := testhelpers.NewLoanRepositoryStub()
	return NewLoanUseCase(applications, loans), applications, loans
}

func TestLoanRequestPricesFromApplication(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)

	loan, err := uc.Request(context.Background(), agent, appl.ID, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loan.State != model.LoanStateNew {
		t.Errorf("state = %s, want NEW", loan.State)
	}
	if loan.InterestRate != 12 {
		t.Errorf("rate = %d, want 12", loan.InterestRate)
	}
	if loan.EMI != 888.49 {
		t.Errorf("emi = %.2f, want 888.49", loan.EMI)
	}
	if loan.Total != 10661.88 || loan.Interest != 661.88 {
		t.Errorf("total/interest = %.2f/%.2f, want 10661.88/661.88", loan.Total, loan.Interest)
	}
	if loan.UserID != 7 || loan.ApplicationID != appl.ID {
		t.Errorf("loan references %d/%d, want owner 7 and application %d", loan.UserID, loan.ApplicationID, appl.ID)
	}
	if loan.StartDate != nil {
		t.Error("start date must be unset before approval")
	}
}

func TestLoanRequestRequiresAgent(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)

	for _, actor := range []model.Actor{{ID: 7, Role: model.RoleUser}, admin} {
		if _, err := uc.Request(context.Background(), actor, appl.ID, 7); !errors.Is(err, domainErrors.ErrPermissionDenied) {
			t.Errorf("Request as %s err = %v, want permission denied", actor.Role, err)
		}
	}
}

func TestLoanRequestInvalidApplication(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)

	// Wrong owner and wrong id must both miss: lookup is by (id, owner) pair.
	if _, err := uc.Request(context.Background(), agent, appl.ID, 8); !errors.Is(err, domainErrors.ErrInvalidApplication) {
		t.Errorf("wrong owner err = %v, want invalid application", err)
	}
	if _, err := uc.Request(context.Background(), agent, appl.ID+1, 7); !errors.Is(err, domainErrors.ErrInvalidApplication) {
		t.Errorf("wrong id err = %v, want invalid application", err)
	}
}

func TestLoanRequestValidation(t *testing.T) {
	uc, _, _ := newLoanFixture(t)

	if _, err := uc.Request(context.Background(), agent, 0, 7); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Errorf("zero application id err = %v, want invalid input", err)
	}
	if _, err := uc.Request(context.Background(), agent, 1, 0); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Errorf("zero user id err = %v, want invalid input", err)
	}
}

func TestLoanRequestDuplicateCreatesSingleLoan(t *testing.T) {
	uc, applications, loans := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)

	if _, err := uc.Request(context.Background(), agent, appl.ID, 7); err != nil {
		t.Fatalf("first request: %v", err)
	}
	if _, err := uc.Request(context.Background(), agent, appl.ID, 7); !errors.Is(err, domainErrors.ErrAlreadyRequested) {
		t.Fatalf("second request err = %v, want already requested", err)
	}

	count := 0
	for _, l := range loans.Loans {
		if l.ApplicationID == appl.ID {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("loans referencing application = %d, want 1", count)
	}
}

func TestLoanApprove(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)
	loan, _ := uc.Request(context.Background(), agent, appl.ID, 7)

	if _, err := uc.Approve(context.Background(), agent, loan.ID, 7); !errors.Is(err, domainErrors.ErrPermissionDenied) {
		t.Fatalf("agent approve err = %v, want permission denied", err)
	}

	approved, err := uc.Approve(context.Background(), admin, loan.ID, 7)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.State != model.LoanStateApproved {
		t.Errorf("state = %s, want APPROVED", approved.State)
	}
	if approved.StartDate == nil {
		t.Error("start date must be set on approval")
	}

	// Re-approval is observable, not silently absorbed.
	if _, err := uc.Approve(context.Background(), admin, loan.ID, 7); !errors.Is(err, domainErrors.ErrAlreadyApproved) {
		t.Fatalf("re-approve err = %v, want already approved", err)
	}
}

func TestLoanApproveInvalidLoan(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)
	loan, _ := uc.Request(context.Background(), agent, appl.ID, 7)

	if _, err := uc.Approve(context.Background(), admin, loan.ID, 8); !errors.Is(err, domainErrors.ErrInvalidLoan) {
		t.Errorf("wrong owner err = %v, want invalid loan", err)
	}
	if _, err := uc.Approve(context.Background(), admin, loan.ID+1, 7); !errors.Is(err, domainErrors.ErrInvalidLoan) {
		t.Errorf("wrong id err = %v, want invalid loan", err)
	}
}

func TestLoanEditReprices(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)
	loan, _ := uc.Request(context.Background(), agent, appl.ID, 7)

	edited, err := uc.Edit(context.Background(), agent, loan.ID, 20000, 30)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if edited.Principal != 20000 || edited.Tenure != 30 {
		t.Errorf("principal/tenure = %d/%d, want 20000/30", edited.Principal, edited.Tenure)
	}
	if edited.InterestRate != 15 {
		t.Errorf("rate = %d, want 15 for tenure 30", edited.InterestRate)
	}
	if edited.State != model.LoanStateNew {
		t.Errorf("state = %s, edit must not change state", edited.State)
	}
	if !edited.RequestDate.After(loan.RequestDate) && !edited.RequestDate.Equal(loan.RequestDate) {
		t.Error("request date must be refreshed on edit")
	}
}

func TestLoanEditAfterApproveRefused(t *testing.T) {
	uc, applications, loans := newLoanFixture(t)
	appl, _ := applications.Create(context.Background(), 7, 10000, 12)
	loan, _ := uc.Request(context.Background(), agent, appl.ID, 7)
	if _, err := uc.Approve(context.Background(), admin, loan.ID, 7); err != nil {
		t.Fatalf("approve: %v", err)
	}

	before := *loans.Loans[loan.ID]

	if _, err := uc.Edit(context.Background(), agent, loan.ID, 99999, 60); !errors.Is(err, domainErrors.ErrLoanLocked) {
		t.Fatalf("edit after approve err = %v, want loan locked", err)
	}

	after := *loans.Loans[loan.ID]
	if before.Principal != after.Principal || before.EMI != after.EMI ||
		before.Interest != after.Interest || before.Total != after.Total ||
		before.InterestRate != after.InterestRate || before.Tenure != after.Tenure {
		t.Fatal("approved loan terms must stay unchanged after refused edit")
	}
}

func TestLoanEditMissesByIDOnly(t *testing.T) {
	uc, _, _ := newLoanFixture(t)

	if _, err := uc.Edit(context.Background(), agent, 42, 10000, 12); !errors.Is(err, domainErrors.ErrInvalidLoan) {
		t.Fatalf("missing loan err = %v, want invalid loan", err)
	}
}

func TestLoanListOwnershipScoping(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	for _, owner := range []int64{1, 1, 2, 3} {
		appl, _ := applications.Create(context.Background(), owner, 10000, 12)
		if _, err := uc.Request(context.Background(), agent, appl.ID, owner); err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	own, err := uc.List(context.Background(), model.Actor{ID: 1, Role: model.RoleUser})
	if err != nil {
		t.Fatalf("user list: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("user sees %d loans, want 2", len(own))
	}
	for _, l := range own {
		if l.UserID != 1 {
			t.Fatalf("user sees foreign loan owned by %d", l.UserID)
		}
	}

	for _, actor := range []model.Actor{agent, admin} {
		all, err := uc.List(context.Background(), actor)
		if err != nil {
			t.Fatalf("%s list: %v", actor.Role, err)
		}
		if len(all) != 4 {
			t.Fatalf("%s sees %d loans, want 4", actor.Role, len(all))
		}
	}
}

func TestLoanLifecycleEndToEnd(t *testing.T) {
	uc, applications, _ := newLoanFixture(t)
	user := model.Actor{ID: 7, Role: model.RoleUser}

	applicationUC := NewApplicationUseCase(applications)
	appl, err := applicationUC.Apply(context.Background(), user, 10000, 12)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	loan, err := uc.Request(context.Background(), agent, appl.ID, user.ID)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if loan.State != model.LoanStateNew || loan.InterestRate != 12 || loan.EMI != 888.49 {
		t.Fatalf("unexpected priced loan %+v", loan)
	}

	approved, err := uc.Approve(context.Background(), admin, loan.ID, user.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.State != model.LoanStateApproved || approved.StartDate == nil {
		t.Fatalf("unexpected approved loan %+v", approved)
	}

	if _, err := uc.Edit(context.Background(), agent, loan.ID, 15000, 24); !errors.Is(err, domainErrors.ErrLoanLocked) {
		t.Fatalf("edit after approve err = %v, want loan locked", err)
	}
}
