package car

import (
	"fmt"
	"strings"
	"time"

	"fleetdesk/internal/domain/reservation"
	"fleetdesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidAvailability = errs.Mark(errs.New("invalid availability status"), errs.ErrValidation)
	ErrInvalidCar          = errs.Mark(errs.New("invalid car"), errs.ErrValidation)
)

// AvailabilityStatus is set outside this service and only read here.
type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusMaintenance AvailabilityStatus = "maintenance"
	StatusRented      AvailabilityStatus = "rented"
)

func (s AvailabilityStatus) String() string {
	return string(s)
}

func (s AvailabilityStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusMaintenance, StatusRented:
		return true
	default:
		return false
	}
}

func ParseAvailabilityStatus(s string) (AvailabilityStatus, error) {
	status := AvailabilityStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidAvailability
	}
	return status, nil
}

type Car struct {
	id           uuid.UUID
	brand        string
	model        string
	year         int
	licensePlate string
	pricePerDay  reservation.Money
	availability AvailabilityStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCar(
	id uuid.UUID,
	brand, model string,
	year int,
	licensePlate string,
	pricePerDay reservation.Money,
	availability AvailabilityStatus,
) (*Car, error) {
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	licensePlate = strings.TrimSpace(licensePlate)
	if id == uuid.Nil || brand == "" || model == "" || licensePlate == "" {
		return nil, errs.Wrap(ErrInvalidCar, "id, brand, model and license plate are required")
	}
	if pricePerDay.Cents() < 0 {
		return nil, reservation.ErrNegativeAmount
	}
	if !availability.IsValid() {
		return nil, ErrInvalidAvailability
	}
	return &Car{
		id:           id,
		brand:        brand,
		model:        model,
		year:         year,
		licensePlate: licensePlate,
		pricePerDay:  pricePerDay,
		availability: availability,
	}, nil
}

func ReconstructCar(
	id uuid.UUID,
	brand, model string,
	year int,
	licensePlate string,
	pricePerDay reservation.Money,
	availability AvailabilityStatus,
	createdAt, updatedAt time.Time,
) *Car {
	return &Car{
		id:           id,
		brand:        brand,
		model:        model,
		year:         year,
		licensePlate: licensePlate,
		pricePerDay:  pricePerDay,
		availability: availability,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Rate is what the availability check prices against.
func (c *Car) Rate() reservation.CarRate {
	return reservation.CarRate{ID: c.id, DailyRate: c.pricePerDay}
}

// DisplayName is the label used on calendar events and reports, e.g. "Toyota Corolla (ABC-123)".
func (c *Car) DisplayName() string {
	return fmt.Sprintf("%s %s (%s)", c.brand, c.model, c.licensePlate)
}

func (c *Car) IsAvailable() bool {
	return c.availability == StatusAvailable
}

func (c *Car) ID() uuid.UUID                    { return c.id }
func (c *Car) Brand() string                    { return c.brand }
func (c *Car) Model() string                    { return c.model }
func (c *Car) Year() int                        { return c.year }
func (c *Car) LicensePlate() string             { return c.licensePlate }
func (c *Car) PricePerDay() reservation.Money   { return c.pricePerDay }
func (c *Car) Availability() AvailabilityStatus { return c.availability }
func (c *Car) CreatedAt() time.Time             { return c.createdAt }
func (c *Car) UpdatedAt() time.Time             { return c.updatedAt }
