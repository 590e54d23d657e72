package notification

import (
	"time"

	"go.uber.org/zap"
)

const (
	EventBookingCreated   = "booking_created"
	EventBookingCancelled = "booking_cancelled"
)

// Event is the payload pushed over the websocket.
type Event struct {
	Type          string    `json:"type"`
	AppointmentID int64     `json:"appointment_id"`
	Date          string    `json:"date,omitempty"`
	Time          string    `json:"time,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}

// Service pushes booking events to stylists through the hub. Delivery is
// best effort: an offline stylist just misses the push.
type Service struct {
	hub    *Hub
	logger *zap.Logger
}

func NewService(hub *Hub, logger *zap.Logger) *Service {
	return &Service{hub: hub, logger: logger}
}

func (s *Service) NotifyBookingCreated(stylistUserID int64, appointmentID int64, date, clock string) {
	event := Event{
		Type:          EventBookingCreated,
		AppointmentID: appointmentID,
		Date:          date,
		Time:          clock,
		SentAt:        time.Now().UTC(),
	}
	if !s.hub.SendToUser(stylistUserID, event) {
		s.logger.Debug("stylist offline, booking event dropped",
			zap.Int64("stylist_user_id", stylistUserID),
			zap.Int64("appointment_id", appointmentID),
		)
	}
}

func (s *Service) NotifyBookingCancelled(stylistUserID int64, appointmentID int64) {
	event := Event{
		Type:          EventBookingCancelled,
		AppointmentID: appointmentID,
		SentAt:        time.Now().UTC(),
	}
	if !s.hub.SendToUser(stylistUserID, event) {
		s.logger.Debug("stylist offline, cancellation event dropped",
			zap.Int64("stylist_user_id", stylistUserID),
			zap.Int64("appointment_id", appointmentID),
		)
	}
}
