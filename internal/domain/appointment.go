package domain

import (
	"fmt"
	"time"
)

type AppointmentStatus string

const (
	AppointmentPending     AppointmentStatus = "pending"
	AppointmentApproved    AppointmentStatus = "approved"
	AppointmentRejected    AppointmentStatus = "rejected"
	AppointmentCompleted   AppointmentStatus = "completed"
	AppointmentCancelled   AppointmentStatus = "cancelled"
	AppointmentRescheduled AppointmentStatus = "rescheduled"
)

// OccupyingStatuses are the statuses that hold a stylist's slot for
// conflict purposes. Rejected, cancelled and completed free the slot.
var OccupyingStatuses = []AppointmentStatus{
	AppointmentPending,
	AppointmentApproved,
	AppointmentRescheduled,
}

func (s AppointmentStatus) Occupying() bool {
	for _, o := range OccupyingStatuses {
		if s == o {
			return true
		}
	}
	return false
}

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentPending, AppointmentApproved, AppointmentRejected,
		AppointmentCompleted, AppointmentCancelled, AppointmentRescheduled:
		return true
	}
	return false
}

// Appointment stores its own duration and price, summed over its services
// at creation time. Later edits to the service catalog do not rewrite
// historic rows.
type Appointment struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	CustomerID      int64             `json:"customer_id" gorm:"not null;index"`
	Customer        *User             `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	StylistID       *int64            `json:"stylist_id" gorm:"index:idx_stylist_day"`
	Stylist         *Stylist          `json:"stylist,omitempty" gorm:"foreignKey:StylistID"`
	Services        []Service         `json:"services,omitempty" gorm:"many2many:appointment_services"`
	AppointmentDate time.Time         `json:"appointment_date" gorm:"type:date;not null;index:idx_stylist_day"`
	AppointmentTime string            `json:"appointment_time" gorm:"type:varchar(5);not null"`
	DurationMinutes int               `json:"duration_minutes" gorm:"not null;default:30"`
	TotalPrice      float64           `json:"total_price"`
	Status          AppointmentStatus `json:"status" gorm:"type:varchar(20);not null;default:pending;index"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// StartMinutes returns the appointment start as minutes since midnight.
// A malformed stored clock yields -1 and never matches a real interval.
func (a *Appointment) StartMinutes() int {
	m, err := ParseClock(a.AppointmentTime)
	if err != nil {
		return -1
	}
	return m
}

func (a *Appointment) EndMinutes() int {
	start := a.StartMinutes()
	if start < 0 {
		return -1
	}
	return start + a.DurationMinutes
}

// ParseClock parses a "15:04" clock string into minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "15:04".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// IntervalsOverlap is the strict half-open interval test: touching
// boundaries do not conflict.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// NormalizeDate truncates a timestamp to its calendar day in UTC, the
// canonical representation for appointment_date columns.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
