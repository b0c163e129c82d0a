package shared

import (
	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotPermitted = errs.Mark(errs.New("role is not allowed to manage reservations"), errs.ErrForbidden)

// Session identifies the caller of a command or query. It is built once per
// request from a verified token and passed explicitly.
type Session struct {
	UserID uuid.UUID
	Role   user.Role
}

func NewSession(userID uuid.UUID, role user.Role) Session {
	return Session{UserID: userID, Role: role}
}

// Key scopes per-caller state such as overview generations.
func (s Session) Key() string {
	return s.UserID.String()
}

func (s Session) RequireManager() error {
	if !s.Role.CanManageReservations() {
		return errs.Wrapf(ErrNotPermitted, "role %s", s.Role)
	}
	return nil
}
