package calendar

import "fleetdesk/internal/domain/reservation"

type Style struct {
	Color string
	Class string
}

var styles = map[reservation.Status]Style{
	reservation.StatusPending:   {Color: "#f59e0b", Class: "event-pending"},
	reservation.StatusConfirmed: {Color: "#3b82f6", Class: "event-confirmed"},
	reservation.StatusActive:    {Color: "#10b981", Class: "event-active"},
	reservation.StatusCompleted: {Color: "#6b7280", Class: "event-completed"},
	reservation.StatusCancelled: {Color: "#ef4444", Class: "event-cancelled"},
}

var fallbackStyle = Style{Color: "#9ca3af", Class: "event-unknown"}

func StyleFor(s reservation.Status) Style {
	if st, ok := styles[s]; ok {
		return st
	}
	return fallbackStyle
}
