package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/loandesk/internal/domain/errors"
	"github.com/polkiloo/loandesk/internal/domain/model"
	"github.com/polkiloo/loandesk/internal/domain/repository"
)

// PgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap in
// a pgxmock pool through the same interface.
type PgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   PgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type applicationRepository struct {
	storage *Storage
}

type loanRepository struct {
	storage *Storage
}

// newPgxPool is swapped out in tests.
var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (PgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Applications() repository.ApplicationRepository {
	return &applicationRepository{storage: s}
}

func (s *Storage) Loans() repository.LoanRepository {
	return &loanRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            login TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'USER',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS applications (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount BIGINT NOT NULL,
            tenure INT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS loans (
            id SERIAL PRIMARY KEY,
            application_id BIGINT UNIQUE NOT NULL REFERENCES applications(id),
            user_id BIGINT NOT NULL REFERENCES users(id),
            principal BIGINT NOT NULL,
            tenure INT NOT NULL,
            interest_rate INT NOT NULL,
            emi DOUBLE PRECISION NOT NULL,
            interest DOUBLE PRECISION NOT NULL,
            total DOUBLE PRECISION NOT NULL,
            state TEXT NOT NULL,
            request_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            start_date TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_applications_user ON applications(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_loans_user ON loans(user_id, request_date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash string, role model.Role) (*model.User, error) {
	const query = `INSERT INTO users (login, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Login = login
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE login=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, login).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, login, password_hash, role, created_at FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) SetRole(ctx context.Context, id int64, role model.Role) error {
	const query = `UPDATE users SET role=$1 WHERE id=$2`
	tag, err := r.storage.pool.Exec(ctx, query, role, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- ApplicationRepository implementation ---

func (r *applicationRepository) Create(ctx context.Context, userID, amount int64, tenure int) (*model.Application, error) {
	const query = `INSERT INTO applications (user_id, amount, tenure) VALUES ($1, $2, $3) RETURNING id, created_at`
	var a model.Application
	err := r.storage.pool.QueryRow(ctx, query, userID, amount, tenure).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.UserID = userID
	a.Amount = amount
	a.Tenure = tenure
	return &a, nil
}

func (r *applicationRepository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Application, error) {
	const query = `SELECT id, user_id, amount, tenure, created_at FROM applications WHERE id=$1 AND user_id=$2`
	var a model.Application
	err := r.storage.pool.QueryRow(ctx, query, id, userID).Scan(&a.ID, &a.UserID, &a.Amount, &a.Tenure, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *applicationRepository) List(ctx context.Context) ([]model.Application, error) {
	const query = `SELECT id, user_id, amount, tenure, created_at FROM applications ORDER BY created_at DESC`
	return r.queryApplications(ctx, query)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Application, error) {
	const query = `SELECT id, user_id, amount, tenure, created_at FROM applications WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryApplications(ctx, query, userID)
}

func (r *applicationRepository) queryApplications(ctx context.Context, query string, args ...any) ([]model.Application, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Application
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.Amount, &a.Tenure, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- LoanRepository implementation ---

const loanColumns = `id, application_id, user_id, principal, tenure, interest_rate, emi, interest, total, state, request_date, start_date`

func (r *loanRepository) Create(ctx context.Context, loan *model.Loan) (*model.Loan, error) {
	// The unique constraint on application_id settles concurrent requests for
	// the same application: the loser observes zero returned rows.
	const query = `INSERT INTO loans (application_id, user_id, principal, tenure, interest_rate, emi, interest, total, state, request_date)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   ON CONFLICT (application_id) DO NOTHING
                   RETURNING id`
	created := *loan
	err := r.storage.pool.QueryRow(ctx, query,
		loan.ApplicationID, loan.UserID, loan.Principal, loan.Tenure,
		loan.InterestRate, loan.EMI, loan.Interest, loan.Total,
		loan.State, loan.RequestDate,
	).Scan(&created.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int64) (*model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id=$1`
	return r.scanLoanRow(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *loanRepository) GetByIDAndOwner(ctx context.Context, id, userID int64) (*model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id=$1 AND user_id=$2`
	return r.scanLoanRow(r.storage.pool.QueryRow(ctx, query, id, userID))
}

func (r *loanRepository) List(ctx context.Context) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY request_date DESC`
	return r.queryLoans(ctx, query)
}

func (r *loanRepository) ListByUser(ctx context.Context, userID int64) ([]model.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id=$1 ORDER BY request_date DESC`
	return r.queryLoans(ctx, query, userID)
}

// Approve flips a NEW loan to APPROVED under a row lock so that concurrent
// approvals of the same loan cannot both report success.
func (r *loanRepository) Approve(ctx context.Context, id int64) (*model.Loan, error) {
	var approved *model.Loan
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var state model.LoanState
		err := tx.QueryRow(ctx, `SELECT state FROM loans WHERE id=$1 FOR UPDATE`, id).Scan(&state)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		switch state {
		case model.LoanStateNew:
		case model.LoanStateApproved:
			return domainErrors.ErrAlreadyApproved
		default:
			return domainErrors.ErrCannotApprove
		}

		query := `UPDATE loans SET state=$1, start_date=NOW() WHERE id=$2 RETURNING ` + loanColumns
		loan, err := r.scanLoanRow(tx.QueryRow(ctx, query, model.LoanStateApproved, id))
		if err != nil {
			return err
		}
		approved = loan
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// UpdateTerms overwrites monetary fields and request date for a NEW loan.
// An approved loan matches no row and the update is refused.
func (r *loanRepository) UpdateTerms(ctx context.Context, loan *model.Loan) error {
	const query = `UPDATE loans
                   SET principal=$1, tenure=$2, interest_rate=$3, emi=$4, interest=$5, total=$6, request_date=$7
                   WHERE id=$8 AND state=$9`
	tag, err := r.storage.pool.Exec(ctx, query,
		loan.Principal, loan.Tenure, loan.InterestRate, loan.EMI,
		loan.Interest, loan.Total, loan.RequestDate,
		loan.ID, model.LoanStateNew,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrLoanLocked
	}
	return nil
}

func (r *loanRepository) scanLoanRow(row pgx.Row) (*model.Loan, error) {
	var l model.Loan
	err := row.Scan(&l.ID, &l.ApplicationID, &l.UserID, &l.Principal, &l.Tenure,
		&l.InterestRate, &l.EMI, &l.Interest, &l.Total, &l.State, &l.RequestDate, &l.StartDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *loanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]model.Loan, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Loan
	for rows.Next() {
		var l model.Loan
		if err := rows.Scan(&l.ID, &l.ApplicationID, &l.UserID, &l.Principal, &l.Tenure,
			&l.InterestRate, &l.EMI, &l.Interest, &l.Total, &l.State, &l.RequestDate, &l.StartDate); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Pool exposes raw connection pool for advanced use.
func (s *Storage) Pool() PgxPool {
	return s.pool
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
