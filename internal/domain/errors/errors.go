package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("cannot perform the action")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidApplication = errors.New("invalid application")
	ErrAlreadyRequested   = errors.New("loan already requested for application")
	ErrInvalidLoan        = errors.New("invalid loan id")
	ErrAlreadyApproved    = errors.New("loan already approved")
	ErrCannotApprove      = errors.New("cannot approve loan")
	ErrLoanLocked         = errors.New("cannot edit approved loan")
)
