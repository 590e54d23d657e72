package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glowsalon/internal/domain"
)

// ErrSlotTaken is returned when the locked re-check finds an overlapping
// occupying appointment at commit time. Identical for pre-commit and
// race-lost detection, so callers cannot tell timing from contention.
var ErrSlotTaken = errors.New("slot already taken")

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Stylist.User").
		Preload("Services").
		First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindOccupying returns the stylist's occupying appointments on a date,
// ordered by start time. excludeID skips the row being re-validated on an
// update; pass 0 on create.
func (r *AppointmentRepository) FindOccupying(ctx context.Context, stylistID int64, date time.Time, excludeID int64) ([]domain.Appointment, error) {
	q := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Where("appointment_date = ?", domain.NormalizeDate(date)).
		Where("status IN ?", occupyingStatusStrings())
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var appts []domain.Appointment
	err := q.Order("appointment_time").Find(&appts).Error
	return appts, err
}

// Create inserts a validated appointment. The stylist row is locked for the
// duration of the transaction and the overlap scan is re-run under that
// lock, so of two racing bookings exactly one commits; the other gets
// ErrSlotTaken.
func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.assertFreeLocked(tx, a, 0); err != nil {
			return err
		}
		if err := tx.Create(a).Error; err != nil {
			return mapConstraintError(err)
		}
		return nil
	})
}

// Reschedule persists new date/time/stylist/services/duration for an
// existing appointment under the same day lock, excluding the
// appointment's own row from the conflict scan.
func (r *AppointmentRepository) Reschedule(ctx context.Context, a *domain.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.assertFreeLocked(tx, a, a.ID); err != nil {
			return err
		}
		if err := tx.Model(a).Association("Services").Replace(a.Services); err != nil {
			return err
		}
		err := tx.Model(&domain.Appointment{}).
			Where("id = ?", a.ID).
			Updates(map[string]any{
				"stylist_id":       a.StylistID,
				"appointment_date": domain.NormalizeDate(a.AppointmentDate),
				"appointment_time": a.AppointmentTime,
				"duration_minutes": a.DurationMinutes,
				"total_price":      a.TotalPrice,
				"status":           a.Status,
			}).Error
		if err != nil {
			return mapConstraintError(err)
		}
		return nil
	})
}

func (r *AppointmentRepository) assertFreeLocked(tx *gorm.DB, a *domain.Appointment, excludeID int64) error {
	if a.StylistID == nil {
		return errors.New("appointment has no stylist assigned")
	}

	// Serializes concurrent bookings for one stylist. SQLite ignores the
	// locking clause but is single-writer anyway.
	var stylist domain.Stylist
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&stylist, *a.StylistID).Error; err != nil {
		return err
	}

	q := tx.Where("stylist_id = ?", *a.StylistID).
		Where("appointment_date = ?", domain.NormalizeDate(a.AppointmentDate)).
		Where("status IN ?", occupyingStatusStrings())
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var existing []domain.Appointment
	if err := q.Find(&existing).Error; err != nil {
		return err
	}

	start := a.StartMinutes()
	end := a.EndMinutes()
	for _, e := range existing {
		if domain.IntervalsOverlap(start, end, e.StartMinutes(), e.EndMinutes()) {
			return ErrSlotTaken
		}
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *AppointmentRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Stylist.User").
		Preload("Services").
		Where("customer_id = ?", customerID).
		Order("appointment_date, appointment_time").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) ListByStylist(ctx context.Context, stylistID int64) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Services").
		Where("stylist_id = ?", stylistID).
		Order("appointment_date, appointment_time").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	var appts []domain.Appointment
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Stylist.User").
		Preload("Services").
		Order("appointment_date, appointment_time").
		Find(&appts).Error
	return appts, err
}

func (r *AppointmentRepository) CountByStatus(ctx context.Context, status domain.AppointmentStatus) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("status = ?", status).
		Count(&n).Error
	return n, err
}

func (r *AppointmentRepository) CompletedRevenue(ctx context.Context) (float64, error) {
	var total *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Select("SUM(total_price)").
		Where("status = ?", domain.AppointmentCompleted).
		Scan(&total).Error
	if err != nil || total == nil {
		return 0, err
	}
	return *total, nil
}

type ServiceBookingCount struct {
	ServiceID int64  `json:"service_id"`
	Name      string `json:"name"`
	Bookings  int64  `json:"bookings"`
}

// TopServices ranks services by how many completed appointments included
// them.
func (r *AppointmentRepository) TopServices(ctx context.Context, limit int) ([]ServiceBookingCount, error) {
	var rows []ServiceBookingCount
	err := r.db.WithContext(ctx).
		Table("appointment_services AS aps").
		Select("s.id AS service_id, s.name AS name, COUNT(*) AS bookings").
		Joins("JOIN appointments a ON a.id = aps.appointment_id").
		Joins("JOIN services s ON s.id = aps.service_id").
		Where("a.status = ?", domain.AppointmentCompleted).
		Group("s.id, s.name").
		Order("bookings DESC, s.id").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func occupyingStatusStrings() []string {
	out := make([]string, 0, len(domain.OccupyingStatuses))
	for _, s := range domain.OccupyingStatuses {
		out = append(out, string(s))
	}
	return out
}

// mapConstraintError folds Postgres unique (23505) and exclusion (23P01)
// violations into ErrSlotTaken so a constraint-detected race looks the same
// as the application-level check.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" || pgErr.Code == "23P01" {
			return ErrSlotTaken
		}
	}
	return err
}
