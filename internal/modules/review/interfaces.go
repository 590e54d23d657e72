package review

import (
	"context"

	"glowsalon/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error)
	ListByStylist(ctx context.Context, stylistID int64, limit, offset int) ([]domain.Review, error)
	RatingSummary(ctx context.Context, stylistID int64) (float64, int64, error)
}

type AppointmentReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
}
