package converter

import (
	"time"

	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/client"
	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const CarColumns = `id, brand, model, year, license_plate, price_per_day_cents, availability_status, created_at, updated_at`

const ClientColumns = `id, full_name, email, created_at, updated_at`

func ScanCar(row pgx.Row) (*car.Car, error) {
	var (
		id                                uuid.UUID
		brand, model, plate, availability string
		year                              int
		price                             int64
		createdAt, updatedAt              time.Time
	)
	if err := row.Scan(&id, &brand, &model, &year, &plate, &price, &availability, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	status, err := car.ParseAvailabilityStatus(availability)
	if err != nil {
		return nil, err
	}
	return car.ReconstructCar(id, brand, model, year, plate, reservation.NewMoney(price), status, createdAt, updatedAt), nil
}

// ScanClient trusts stored emails; they were validated on the way in.
func ScanClient(row pgx.Row) (*client.Client, error) {
	var (
		id                   uuid.UUID
		fullName, email      string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &fullName, &email, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	e, err := client.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return client.ReconstructClient(id, fullName, e, createdAt, updatedAt), nil
}

func CollectCars(rows pgx.Rows) ([]*car.Car, error) {
	defer rows.Close()
	var out []*car.Car
	for rows.Next() {
		c, err := ScanCar(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func CollectClients(rows pgx.Rows) ([]*client.Client, error) {
	defer rows.Close()
	var out []*client.Client
	for rows.Next() {
		c, err := ScanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
