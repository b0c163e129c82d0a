package queries

import (
	"fleetdesk/internal/infra"
	"fleetdesk/internal/pkg/errs"
)

var (
	ErrCarNotFound         = errs.Mark(errs.New("car not found"), errs.ErrNotFound)
	ErrClientNotFound      = errs.Mark(errs.New("client not found"), errs.ErrNotFound)
	ErrReservationNotFound = errs.Mark(errs.New("reservation not found"), errs.ErrNotFound)
)

// mapNotFound turns a repository NOT_FOUND into the given sentinel and passes
// every other error through.
func mapNotFound(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
