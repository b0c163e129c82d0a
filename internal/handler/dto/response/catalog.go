package response

import (
	"fleetdesk/internal/domain/car"
	"fleetdesk/internal/domain/client"

	"github.com/google/uuid"
)

type CarResponse struct {
	ID                 uuid.UUID `json:"id"`
	Brand              string    `json:"brand"`
	Model              string    `json:"model"`
	Year               int       `json:"year"`
	LicensePlate       string    `json:"license_plate"`
	PricePerDay        int64     `json:"price_per_day"`
	AvailabilityStatus string    `json:"availability_status"`
	DisplayName        string    `json:"display_name"`
}

func FromCar(c *car.Car) *CarResponse {
	return &CarResponse{
		ID:                 c.ID(),
		Brand:              c.Brand(),
		Model:              c.Model(),
		Year:               c.Year(),
		LicensePlate:       c.LicensePlate(),
		PricePerDay:        c.PricePerDay().Cents(),
		AvailabilityStatus: c.Availability().String(),
		DisplayName:        c.DisplayName(),
	}
}

func FromCars(cars []*car.Car) []*CarResponse {
	res := make([]*CarResponse, len(cars))
	for i, c := range cars {
		res[i] = FromCar(c)
	}
	return res
}

type ClientResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

func FromClients(clients []*client.Client) []*ClientResponse {
	res := make([]*ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = &ClientResponse{
			ID:       c.ID(),
			FullName: c.FullName(),
			Email:    c.Email().Value(),
		}
	}
	return res
}
