//go:build unit || e2e

package builder

import (
	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/reservation"

	"github.com/google/uuid"
)

type CarBuilder struct {
	ID           uuid.UUID
	Brand        string
	Model        string
	Year         int
	LicensePlate string
	PricePerDay  int64
	Availability car.AvailabilityStatus
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:           uuid.New(),
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: "ABC-123",
		PricePerDay:  5000,
		Availability: car.StatusAvailable,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

func (b *CarBuilder) BuildDomain() *car.Car {
	c, err := car.NewCar(b.ID, b.Brand, b.Model, b.Year, b.LicensePlate, reservation.NewMoney(b.PricePerDay), b.Availability)
	if err != nil {
		panic(err)
	}
	return c
}
