package scheduling

import (
	"context"
	"time"

	"glowsalon/internal/domain"
)

// ServiceRepository resolves requested service ids.
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

// StylistRepository supplies the stylist roster for validation and
// enumeration. FindQualified must require coverage of every category and
// return a stable order.
type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.Stylist, error)
	FindQualified(ctx context.Context, categoryIDs []int64) ([]domain.Stylist, error)
}

// AppointmentRepository owns the ledger. Create and Reschedule must enforce
// the no-overlap invariant transactionally and surface
// repository.ErrSlotTaken when the race is lost.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	FindOccupying(ctx context.Context, stylistID int64, date time.Time, excludeID int64) ([]domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) error
	Reschedule(ctx context.Context, a *domain.Appointment) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error)
	ListByStylist(ctx context.Context, stylistID int64) ([]domain.Appointment, error)
	ListAll(ctx context.Context) ([]domain.Appointment, error)
}

// LoyaltyAwarder credits points when an appointment completes.
type LoyaltyAwarder interface {
	Earn(ctx context.Context, customerID int64, points int64, note string) error
}

// BookingNotifier pushes booking events to the stylist's live channel.
// Implementations must not block the request path.
type BookingNotifier interface {
	NotifyBookingCreated(stylistUserID int64, appointmentID int64, date, clock string)
	NotifyBookingCancelled(stylistUserID int64, appointmentID int64)
}
