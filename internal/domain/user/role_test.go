//go:build unit

package user_test

import (
	"testing"

	"fleetdesk/internal/domain/user"
	"fleetdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	testCases := []struct {
		input  string
		manage bool
		errIs  error
	}{
		{input: "viewer", manage: false},
		{input: "operator", manage: true},
		{input: "admin", manage: true},
		{input: "ADMIN", errIs: user.ErrInvalidRole},
		{input: "", errIs: user.ErrInvalidRole},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			role, err := user.NewRole(tc.input)
			if tc.errIs != nil {
				assert.True(t, errs.Is(err, tc.errIs))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.manage, role.CanManageReservations())
		})
	}
}
