//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestCar(t *testing.T, db DBLike, brand, model, plate string, pricePerDayCents int64) uuid.UUID {
	t.Helper()

	carID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO cars (id, brand, model, year, license_plate, price_per_day_cents, availability_status)
		 VALUES ($1, $2, $3, 2022, $4, $5, 'available')`,
		carID, brand, model, plate, pricePerDayCents)
	require.NoError(t, err)

	return carID
}

func CreateTestClient(t *testing.T, db DBLike, fullName, email string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO clients (id, full_name, email) VALUES ($1, $2, $3)",
		clientID, fullName, email)
	require.NoError(t, err)

	return clientID
}

// CreateTestReservation stores a flat 1.00 total so revenue sums stay predictable.
func CreateTestReservation(t *testing.T, db DBLike, carID, clientID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, client_id, car_id, start_date, end_date, status, payment_status,
		   daily_rate_cents, total_amount_cents, deposit_cents)
		 VALUES ($1, $2, $3, $4, $5, $6, 'unpaid', 100, 100, 0)`,
		reservationID, clientID, carID, start, end, status)
	require.NoError(t, err)

	return reservationID
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables except the goose bookkeeping table
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
