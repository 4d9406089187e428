package usecase

import "github.com/polkiloo/loandesk/internal/domain/model"

// Action identifies an operation subject to role gating.
type Action string

const (
	ActionApply            Action = "apply"
	ActionViewApplications Action = "view_applications"
	ActionRequestLoan      Action = "request_loan"
	ActionListLoans        Action = "list_loans"
	ActionApproveLoan      Action = "approve_loan"
	ActionEditLoan         Action = "edit_loan"
	ActionPromoteUser      Action = "promote_user"
	ActionDeleteUser       Action = "delete_user"
	ActionListUsers        Action = "list_users"
	ActionViewUser         Action = "view_user"
)

// Allowed reports whether a caller with the given role may perform the action.
// Denials are generic: callers are never told whether they failed on role or
// on record existence.
func Allowed(role model.Role, action Action) bool {
	switch action {
	case ActionApply, ActionListLoans:
		return true
	case ActionViewApplications, ActionRequestLoan, ActionEditLoan:
		return role == model.RoleAgent
	case ActionApproveLoan:
		return role == model.RoleAdmin
	case ActionPromoteUser, ActionDeleteUser, ActionListUsers, ActionViewUser:
		return role == model.RoleAgent || role == model.RoleAdmin
	}
	return false
}

// SeesAllLoans reports whether list results are unscoped for the role.
// Plain users only ever see loans they own.
func SeesAllLoans(role model.Role) bool {
	return role == model.RoleAgent || role == model.RoleAdmin
}
