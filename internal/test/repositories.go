package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all stored users ordered by id.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok {
			result = append(result, *user)
		}
	}
	return result, nil
}

// SetRole updates stored role or reports not found.
func (s *UserRepositoryStub) SetRole(ctx context.Context, id int64, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = role
	return nil
}

// Delete removes stored user or reports not found.
func (s *UserRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	delete(s.Users, user.Login)
	return nil
}

// ApplicationRepositoryStub stores applications in-memory for tests.
type ApplicationRepositoryStub struct {
	Applications []model.Application
	Next         int64
	Err          error
}

// NewApplicationRepositoryStub constructs an empty stub.
func NewApplicationRepositoryStub() *ApplicationRepositoryStub {
	return &ApplicationRepositoryStub{Next: 1}
}

// Create appends a new application owned by the user.
func (s *ApplicationRepositoryStub) Create(ctx context.Context, userID, amount int64, tenure int) (*model.Application, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	a := model.Application{ID: s.Next, UserID: userID, Amount: amount, Tenure: tenure, CreatedAt: time.Now()}
	s.Next++
	s.Applications = append(s.Applications, a)
	return &a, nil
}

// GetByIDAndOwner returns an application only when both id and owner match.
func (s *ApplicationRepositoryStub) GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Application, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, a := range s.Applications {
		if a.ID == id && a.UserID == userID {
			found := a
			return &found, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored application.
func (s *ApplicationRepositoryStub) List(ctx context.Context) ([]model.Application, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]model.Application(nil), s.Applications...), nil
}

// ListByUser filters stored applications by owner.
func (s *ApplicationRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Application, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Application
	for _, a := range s.Applications {
		if a.UserID == userID {
			result = append(result, a)
		}
	}
	return result, nil
}

// LoanRepositoryStub stores loans in-memory and enforces the one-loan-per-
// application rule the way the real datastore does.
type LoanRepositoryStub struct {
	Loans map[int64]*model.Loan
	Next  int64
	Err   error
}

// NewLoanRepositoryStub constructs an empty stub.
func NewLoanRepositoryStub() *LoanRepositoryStub {
	return &LoanRepositoryStub{Loans: make(map[int64]*model.Loan), Next: 1}
}

// Create inserts the loan unless one already references the same application.
func (s *LoanRepositoryStub) Create(ctx context.Context, loan *model.Loan) (*model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, existing := range s.Loans {
		if existing.ApplicationID == loan.ApplicationID {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	created := *loan
	created.ID = s.Next
	s.Next++
	s.Loans[created.ID] = &created
	return &created, nil
}

// GetByID fetches a loan by identifier.
func (s *LoanRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if loan, ok := s.Loans[id]; ok {
		found := *loan
		return &found, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByIDAndOwner fetches a loan only when both id and owner match.
func (s *LoanRepositoryStub) GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if loan, ok := s.Loans[id]; ok && loan.UserID == userID {
		found := *loan
		return &found, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns every stored loan ordered by id.
func (s *LoanRepositoryStub) List(ctx context.Context) ([]model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Loan
	for id := int64(1); id < s.Next; id++ {
		if loan, ok := s.Loans[id]; ok {
			result = append(result, *loan)
		}
	}
	return result, nil
}

// ListByUser filters stored loans by owner.
func (s *LoanRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Loan
	for id := int64(1); id < s.Next; id++ {
		if loan, ok := s.Loans[id]; ok && loan.UserID == userID {
			result = append(result, *loan)
		}
	}
	return result, nil
}

// Approve mimics the transactional state flip of the real repository.
func (s *LoanRepositoryStub) Approve(ctx context.Context, id int64) (*model.Loan, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	loan, ok := s.Loans[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	switch loan.State {
	case model.LoanStateNew:
	case model.LoanStateApproved:
		return nil, domainErrors.ErrAlreadyApproved
	default:
		return nil, domainErrors.ErrCannotApprove
	}
	now := time.Now()
	loan.State = model.LoanStateApproved
	loan.StartDate = &now
	approved := *loan
	return &approved, nil
}

// UpdateTerms overwrites monetary fields for NEW loans only.
func (s *LoanRepositoryStub) UpdateTerms(ctx context.Context, loan *model.Loan) error {
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.Loans[loan.ID]
	if !ok || stored.State != model.LoanStateNew {
		return domainErrors.ErrLoanLocked
	}
	updated := *loan
	s.Loans[loan.ID] = &updated
	return nil
}
