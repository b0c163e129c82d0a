// Package user holds the staff roles carried by verified access tokens.
// Accounts themselves live in the identity provider.
package user

import "fleetdesk/internal/pkg/errs"

var ErrInvalidRole = errs.Mark(errs.New("invalid role"), errs.ErrValidation)

type Role string

const (
	RoleViewer   Role = "viewer"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleViewer, RoleOperator, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanManageReservations is false for viewers, who only see dashboards.
func (r Role) CanManageReservations() bool {
	return r == RoleOperator || r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
