package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"glowsalon/internal/config"
	"glowsalon/internal/domain"
	"glowsalon/internal/repository"
)

const dateLayout = "2006-01-02"

type Service struct {
	services     ServiceRepository
	stylists     StylistRepository
	appointments AppointmentRepository
	loyalty      LoyaltyAwarder
	notifier     BookingNotifier
	cfg          config.Scheduling
	log          *zap.Logger

	now func() time.Time
}

func NewService(
	services ServiceRepository,
	stylists StylistRepository,
	appointments AppointmentRepository,
	loyalty LoyaltyAwarder,
	notifier BookingNotifier,
	cfg config.Scheduling,
	log *zap.Logger,
) *Service {
	return &Service{
		services:     services,
		stylists:     stylists,
		appointments: appointments,
		loyalty:      loyalty,
		notifier:     notifier,
		cfg:          cfg,
		log:          log,
		now:          time.Now,
	}
}

// resolvedRequest is the shared prefix of validation and enumeration:
// services resolved, totals summed, distinct categories collected.
type resolvedRequest struct {
	services    []domain.Service
	duration    int
	totalPrice  float64
	categories  []domain.Category
	categoryIDs []int64
}

func (s *Service) resolveServices(ctx context.Context, serviceIDs []int64) (*resolvedRequest, error) {
	if len(serviceIDs) == 0 {
		return nil, ErrEmptySelection
	}

	seen := make(map[int64]bool, len(serviceIDs))
	unique := make([]int64, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	services, err := s.services.GetByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(services) != len(unique) {
		return nil, ErrServiceNotFound
	}

	r := &resolvedRequest{services: services}
	catSeen := make(map[int64]bool)
	for _, svc := range services {
		r.duration += svc.DurationMinutes
		r.totalPrice += svc.Price
		if svc.Category != nil && !catSeen[svc.Category.ID] {
			catSeen[svc.Category.ID] = true
			r.categories = append(r.categories, *svc.Category)
			r.categoryIDs = append(r.categoryIDs, svc.Category.ID)
		}
	}
	return r, nil
}

// ValidateBooking runs the full booking check: service resolution,
// preferred-stylist checks or auto-assignment, and the past-time guard.
// excludeAppointmentID skips that row in the conflict scan so re-validating
// an appointment against itself never self-conflicts.
func (s *Service) ValidateBooking(
	ctx context.Context,
	serviceIDs []int64,
	date time.Time,
	startMinutes int,
	preferredStylist *int64,
	excludeAppointmentID int64,
) (*BookingValidation, error) {
	req, err := s.resolveServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	date = domain.NormalizeDate(date)
	endMinutes := startMinutes + req.duration

	var assigned *domain.Stylist
	if preferredStylist != nil {
		assigned, err = s.checkPreferred(ctx, *preferredStylist, req, date, startMinutes, endMinutes, excludeAppointmentID)
	} else {
		assigned, err = s.autoAssign(ctx, req, date, startMinutes, endMinutes, excludeAppointmentID)
	}
	if err != nil {
		return nil, err
	}

	if s.inPast(date, startMinutes) {
		return nil, ErrAppointmentInPast
	}

	return &BookingValidation{
		Stylist:         assigned,
		Services:        req.services,
		DurationMinutes: req.duration,
		TotalPrice:      req.totalPrice,
	}, nil
}

func (s *Service) checkPreferred(
	ctx context.Context,
	stylistID int64,
	req *resolvedRequest,
	date time.Time,
	startMinutes, endMinutes int,
	excludeID int64,
) (*domain.Stylist, error) {
	stylist, err := s.stylists.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}
	if !stylist.IsAvailable {
		return nil, ErrStylistUnavailable
	}
	if missing := stylist.MissingSpecialties(req.categories); len(missing) > 0 {
		return nil, &MissingSpecialtyError{Categories: missing}
	}
	if !withinWorkingHours(stylist, startMinutes, endMinutes) {
		return nil, ErrOutsideWorkingHours
	}

	free, err := s.slotFree(ctx, stylist.ID, date, startMinutes, endMinutes, excludeID)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotConflict
	}
	return stylist, nil
}

// autoAssign picks the first qualified stylist, by ascending id, whose
// working hours contain the interval and whose day has no overlap.
func (s *Service) autoAssign(
	ctx context.Context,
	req *resolvedRequest,
	date time.Time,
	startMinutes, endMinutes int,
	excludeID int64,
) (*domain.Stylist, error) {
	candidates, err := s.stylists.FindQualified(ctx, req.categoryIDs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrNoQualifiedStylist
	}

	for i := range candidates {
		st := &candidates[i]
		if !withinWorkingHours(st, startMinutes, endMinutes) {
			continue
		}
		free, err := s.slotFree(ctx, st.ID, date, startMinutes, endMinutes, excludeID)
		if err != nil {
			return nil, err
		}
		if free {
			return st, nil
		}
	}
	return nil, ErrNoAvailableSlot
}

func (s *Service) slotFree(ctx context.Context, stylistID int64, date time.Time, startMinutes, endMinutes int, excludeID int64) (bool, error) {
	existing, err := s.appointments.FindOccupying(ctx, stylistID, date, excludeID)
	if err != nil {
		return false, err
	}
	for _, e := range existing {
		if domain.IntervalsOverlap(startMinutes, endMinutes, e.StartMinutes(), e.EndMinutes()) {
			return false, nil
		}
	}
	return true, nil
}

// withinWorkingHours checks full containment against declared hours,
// inclusive at both ends. An empty bound is unbounded on that side.
func withinWorkingHours(st *domain.Stylist, startMinutes, endMinutes int) bool {
	if st.WorkingHoursStart != "" {
		ws, err := domain.ParseClock(st.WorkingHoursStart)
		if err != nil || startMinutes < ws {
			return false
		}
	}
	if st.WorkingHoursEnd != "" {
		we, err := domain.ParseClock(st.WorkingHoursEnd)
		if err != nil || endMinutes > we {
			return false
		}
	}
	return true
}

func (s *Service) inPast(date time.Time, startMinutes int) bool {
	at := date.Add(time.Duration(startMinutes) * time.Minute)
	return at.Before(s.now().UTC())
}

// CreateAppointment validates the request and commits a pending booking.
// Duration and price are frozen at this point.
func (s *Service) CreateAppointment(ctx context.Context, customerID int64, req CreateAppointmentRequest) (*domain.Appointment, error) {
	date, startMinutes, err := parseDateTime(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, ErrValidation
	}

	v, err := s.ValidateBooking(ctx, req.ServiceIDs, date, startMinutes, req.StylistID, 0)
	if err != nil {
		return nil, err
	}

	stylistID := v.Stylist.ID
	a := &domain.Appointment{
		CustomerID:      customerID,
		StylistID:       &stylistID,
		Services:        v.Services,
		AppointmentDate: date,
		AppointmentTime: domain.FormatClock(startMinutes),
		DurationMinutes: v.DurationMinutes,
		TotalPrice:      v.TotalPrice,
		Status:          domain.AppointmentPending,
	}

	if err := s.appointments.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyBookingCreated(v.Stylist.UserID, a.ID, req.AppointmentDate, a.AppointmentTime)
	}
	return a, nil
}

// Reschedule re-runs validation for new date/time/stylist/services,
// excluding the appointment's own row, and persists under the day lock.
func (s *Service) Reschedule(ctx context.Context, actorID int64, role domain.Role, appointmentID int64, req RescheduleRequest) (*domain.Appointment, error) {
	a, err := s.getOwned(ctx, actorID, role, appointmentID)
	if err != nil {
		return nil, err
	}
	if !a.Status.Occupying() {
		return nil, ErrInvalidTransition
	}

	date, startMinutes, err := parseDateTime(req.AppointmentDate, req.AppointmentTime)
	if err != nil {
		return nil, ErrValidation
	}

	v, err := s.ValidateBooking(ctx, req.ServiceIDs, date, startMinutes, req.StylistID, a.ID)
	if err != nil {
		return nil, err
	}

	stylistID := v.Stylist.ID
	a.StylistID = &stylistID
	a.Services = v.Services
	a.AppointmentDate = date
	a.AppointmentTime = domain.FormatClock(startMinutes)
	a.DurationMinutes = v.DurationMinutes
	a.TotalPrice = v.TotalPrice
	a.Status = domain.AppointmentRescheduled

	if err := s.appointments.Reschedule(ctx, a); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}
	return a, nil
}

var transitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentPending:     {domain.AppointmentApproved, domain.AppointmentRejected, domain.AppointmentCancelled},
	domain.AppointmentApproved:    {domain.AppointmentCompleted, domain.AppointmentCancelled, domain.AppointmentRescheduled},
	domain.AppointmentRescheduled: {domain.AppointmentApproved, domain.AppointmentCompleted, domain.AppointmentCancelled},
}

func canTransition(from, to domain.AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if to == allowed {
			return true
		}
	}
	return false
}

// UpdateStatus applies a staff-driven transition. Completion awards
// loyalty points from the frozen total price.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus domain.AppointmentStatus) (*domain.Appointment, error) {
	if !newStatus.Valid() {
		return nil, ErrValidation
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if !canTransition(a.Status, newStatus) {
		return nil, ErrInvalidTransition
	}

	if err := s.appointments.UpdateStatus(ctx, id, newStatus); err != nil {
		return nil, err
	}

	if newStatus == domain.AppointmentCompleted && s.loyalty != nil {
		points := int64(a.TotalPrice)
		if points > 0 {
			// best effort: a ledger failure must not roll back the completion
			if err := s.loyalty.Earn(ctx, a.CustomerID, points, fmt.Sprintf("appointment #%d", a.ID)); err != nil {
				s.log.Warn("loyalty award failed",
					zap.Int64("appointment_id", a.ID),
					zap.Int64("customer_id", a.CustomerID),
					zap.Int64("points", points),
					zap.Error(err),
				)
			}
		}
	}
	if newStatus == domain.AppointmentCancelled && s.notifier != nil && a.Stylist != nil {
		s.notifier.NotifyBookingCancelled(a.Stylist.UserID, a.ID)
	}

	a.Status = newStatus
	return a, nil
}

// CancelByCustomer lets the owning customer cancel a pending or approved
// appointment.
func (s *Service) CancelByCustomer(ctx context.Context, customerID, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if a.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if a.Status != domain.AppointmentPending && a.Status != domain.AppointmentApproved {
		return nil, ErrInvalidTransition
	}

	if err := s.appointments.UpdateStatus(ctx, id, domain.AppointmentCancelled); err != nil {
		return nil, err
	}
	if s.notifier != nil && a.Stylist != nil {
		s.notifier.NotifyBookingCancelled(a.Stylist.UserID, a.ID)
	}

	a.Status = domain.AppointmentCancelled
	return a, nil
}

// ListForActor scopes the ledger by role: customers see their own rows,
// stylists their schedule, admins everything.
func (s *Service) ListForActor(ctx context.Context, userID int64, role domain.Role) ([]domain.Appointment, error) {
	switch role {
	case domain.RoleAdmin:
		return s.appointments.ListAll(ctx)
	case domain.RoleStylist:
		stylist, err := s.stylists.GetByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStylistNotFound
			}
			return nil, err
		}
		return s.appointments.ListByStylist(ctx, stylist.ID)
	default:
		return s.appointments.ListByCustomer(ctx, userID)
	}
}

func (s *Service) Get(ctx context.Context, userID int64, role domain.Role, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}

	switch role {
	case domain.RoleAdmin:
		return a, nil
	case domain.RoleStylist:
		stylist, err := s.stylists.GetByUserID(ctx, userID)
		if err == nil && a.StylistID != nil && *a.StylistID == stylist.ID {
			return a, nil
		}
		return nil, ErrForbidden
	default:
		if a.CustomerID != userID {
			return nil, ErrForbidden
		}
		return a, nil
	}
}

func (s *Service) getOwned(ctx context.Context, actorID int64, role domain.Role, id int64) (*domain.Appointment, error) {
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if role != domain.RoleAdmin && a.CustomerID != actorID {
		return nil, ErrForbidden
	}
	return a, nil
}

func parseDateTime(dateStr, clockStr string) (time.Time, int, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, 0, err
	}
	startMinutes, err := domain.ParseClock(clockStr)
	if err != nil {
		return time.Time{}, 0, err
	}
	return domain.NormalizeDate(date), startMinutes, nil
}
