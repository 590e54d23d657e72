package scheduling

import "glowsalon/internal/domain"

type CreateAppointmentRequest struct {
	ServiceIDs      []int64 `json:"service_ids" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"` // 2006-01-02
	AppointmentTime string  `json:"appointment_time" binding:"required"` // 15:04
	StylistID       *int64  `json:"stylist_id"`
}

type RescheduleRequest struct {
	ServiceIDs      []int64 `json:"service_ids" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	StylistID       *int64  `json:"stylist_id"`
}

type UpdateStatusRequest struct {
	Status domain.AppointmentStatus `json:"status" binding:"required"`
}

// StylistSlots is one stylist's open start times on the requested day,
// ordered by clock. The enumerator returns a per-stylist breakdown rather
// than one flattened list.
type StylistSlots struct {
	StylistID   int64    `json:"stylist_id"`
	StylistName string   `json:"stylist_name"`
	Slots       []string `json:"slots"`
}

// BookingValidation is the validator's result: the stylist who will take
// the booking and the frozen totals.
type BookingValidation struct {
	Stylist         *domain.Stylist
	Services        []domain.Service
	DurationMinutes int
	TotalPrice      float64
}
