package response

import (
	"time"

	"fleetdesk/internal/domain/calendar"

	"github.com/google/uuid"
)

type CalendarResponse struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Cells []CellResponse `json:"cells"`
}

type CellResponse struct {
	Date           string          `json:"date"`
	IsToday        bool            `json:"is_today"`
	IsCurrentMonth bool            `json:"is_current_month"`
	Events         []EventResponse `json:"events"`
}

type EventResponse struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	Title         string    `json:"title"`
	CarID         uuid.UUID `json:"car_id"`
	ClientID      uuid.UUID `json:"client_id"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Status        string    `json:"status"`
	Color         string    `json:"color"`
	ClassName     string    `json:"class_name"`
}

func FromGrid(g calendar.Grid) *CalendarResponse {
	res := &CalendarResponse{
		Year:  g.Year,
		Month: int(g.Month),
		Cells: make([]CellResponse, len(g.Cells)),
	}
	for i, cell := range g.Cells {
		events := make([]EventResponse, len(cell.Events))
		for j, e := range cell.Events {
			events[j] = EventResponse{
				ReservationID: e.ReservationID,
				Title:         e.Title,
				CarID:         e.CarID,
				ClientID:      e.ClientID,
				Start:         e.Start,
				End:           e.End,
				Status:        e.Status.String(),
				Color:         e.Style.Color,
				ClassName:     e.Style.Class,
			}
		}
		res.Cells[i] = CellResponse{
			Date:           cell.Date.Format(time.DateOnly),
			IsToday:        cell.IsToday,
			IsCurrentMonth: cell.IsCurrentMonth,
			Events:         events,
		}
	}
	return res
}
