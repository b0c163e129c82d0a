//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"fleetdesk/internal/pkg/errs"
	"fleetdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.False(t, pgconv.StringToPgtype("").Valid)
	assert.Equal(t, pgtype.Text{String: "Airport", Valid: true}, pgconv.StringToPgtype("Airport"))
	assert.Equal(t, "", pgconv.StringFromPgtype(pgtype.Text{}))
	assert.Equal(t, "Downtown", pgconv.StringFromPgtype(pgconv.StringToPgtype("Downtown")))
}

func TestTime(t *testing.T) {
	assert.False(t, pgconv.TimeToPgtype(time.Time{}).Valid)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, pgconv.TimeFromPgtype(pgconv.TimeToPgtype(now)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find car")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}
