//go:build unit

package queries_test

import (
	"context"
	"time"

	"fleetdesk/internal/usecase/shared"
	sharedmock "fleetdesk/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var now = time.Date(2024, 2, 15, 9, 30, 0, 0, time.UTC)

type readMocks struct {
	uow          *sharedmock.MockUnitOfWork
	reads        *sharedmock.MockReads
	cars         *sharedmock.MockCarReader
	clients      *sharedmock.MockClientReader
	reservations *sharedmock.MockReservationReader
}

// newReadMocks wires a read-only unit of work over mocked readers.
func newReadMocks(ctrl *gomock.Controller) *readMocks {
	m := &readMocks{
		uow:          sharedmock.NewMockUnitOfWork(ctrl),
		reads:        sharedmock.NewMockReads(ctrl),
		cars:         sharedmock.NewMockCarReader(ctrl),
		clients:      sharedmock.NewMockClientReader(ctrl),
		reservations: sharedmock.NewMockReservationReader(ctrl),
	}
	m.uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Reads) error) error {
			return fn(ctx, m.reads)
		}).AnyTimes()
	m.reads.EXPECT().Cars().Return(m.cars).AnyTimes()
	m.reads.EXPECT().Clients().Return(m.clients).AnyTimes()
	m.reads.EXPECT().Reservations().Return(m.reservations).AnyTimes()
	return m
}
