package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"glowsalon/internal/config"
	"glowsalon/internal/domain"
	"glowsalon/internal/repository"
)

// Mock repositories

type MockServiceRepo struct {
	mock.Mock
}

func (m *MockServiceRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockStylistRepo struct {
	mock.Mock
}

func (m *MockStylistRepo) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stylist), args.Error(1)
}

func (m *MockStylistRepo) GetByUserID(ctx context.Context, userID int64) (*domain.Stylist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stylist), args.Error(1)
}

func (m *MockStylistRepo) FindQualified(ctx context.Context, categoryIDs []int64) ([]domain.Stylist, error) {
	args := m.Called(ctx, categoryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stylist), args.Error(1)
}

type MockAppointmentRepo struct {
	mock.Mock
}

func (m *MockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) FindOccupying(ctx context.Context, stylistID int64, date time.Time, excludeID int64) ([]domain.Appointment, error) {
	args := m.Called(ctx, stylistID, date, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) Create(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	if a != nil && args.Error(0) == nil {
		a.ID = 77 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockAppointmentRepo) Reschedule(ctx context.Context, a *domain.Appointment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAppointmentRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockAppointmentRepo) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Appointment, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) ListByStylist(ctx context.Context, stylistID int64) ([]domain.Appointment, error) {
	args := m.Called(ctx, stylistID)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

func (m *MockAppointmentRepo) ListAll(ctx context.Context) ([]domain.Appointment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Appointment), args.Error(1)
}

type MockLoyalty struct {
	mock.Mock
}

func (m *MockLoyalty) Earn(ctx context.Context, customerID int64, points int64, note string) error {
	args := m.Called(ctx, customerID, points, note)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBookingCreated(stylistUserID int64, appointmentID int64, date, clock string) {
	m.Called(stylistUserID, appointmentID, date, clock)
}

func (m *MockNotifier) NotifyBookingCancelled(stylistUserID int64, appointmentID int64) {
	m.Called(stylistUserID, appointmentID)
}

// Fixtures

var (
	catHair  = domain.Category{ID: 1, Name: "Hair"}
	catNails = domain.Category{ID: 2, Name: "Nails"}

	bookDate = time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

func svcHaircut() domain.Service {
	return domain.Service{ID: 1, Name: "Haircut", Price: 8000, DurationMinutes: 60, CategoryID: &catHair.ID, Category: &catHair}
}

func svcManicure() domain.Service {
	return domain.Service{ID: 2, Name: "Gel Manicure", Price: 7000, DurationMinutes: 30, CategoryID: &catNails.ID, Category: &catNails}
}

func stylistHair() *domain.Stylist {
	return &domain.Stylist{
		ID:                1,
		UserID:            11,
		User:              &domain.User{ID: 11, FirstName: "Aizhan"},
		Specialties:       []domain.Category{catHair},
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "18:00",
		IsAvailable:       true,
	}
}

func stylistAllRounder() *domain.Stylist {
	return &domain.Stylist{
		ID:          2,
		UserID:      22,
		User:        &domain.User{ID: 22, FirstName: "Madina"},
		Specialties: []domain.Category{catHair, catNails},
		IsAvailable: true,
	}
}

func occupying(id int64, clock string, minutes int) domain.Appointment {
	return domain.Appointment{
		ID:              id,
		AppointmentTime: clock,
		DurationMinutes: minutes,
		Status:          domain.AppointmentApproved,
	}
}

func newTestService(services *MockServiceRepo, stylists *MockStylistRepo, appts *MockAppointmentRepo, loyalty *MockLoyalty, notifier *MockNotifier) *Service {
	cfg := config.Scheduling{SalonOpen: "08:00", SalonClose: "20:00", SlotStepMinutes: 15}
	s := NewService(services, stylists, appts, loyalty, notifier, cfg, zap.NewNop())
	s.now = func() time.Time { return testNow }
	return s
}

// Validation

func TestValidateBooking_PreferredStylistSuccess(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).Return([]domain.Appointment{}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	v, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 10*60, &preferred, 0)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.Stylist.ID)
	assert.Equal(t, 60, v.DurationMinutes)
	assert.Equal(t, 8000.0, v.TotalPrice)
}

func TestValidateBooking_EmptySelection(t *testing.T) {
	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), new(MockAppointmentRepo), nil, nil)

	_, err := s.ValidateBooking(context.Background(), nil, bookDate, 10*60, nil, 0)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestValidateBooking_UnknownService(t *testing.T) {
	services := new(MockServiceRepo)
	services.On("GetByIDs", mock.Anything, []int64{1, 42}).Return([]domain.Service{svcHaircut()}, nil)

	s := newTestService(services, new(MockStylistRepo), new(MockAppointmentRepo), nil, nil)

	_, err := s.ValidateBooking(context.Background(), []int64{1, 42}, bookDate, 10*60, nil, 0)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestValidateBooking_MissingSpecialty(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)

	services.On("GetByIDs", mock.Anything, []int64{1, 2}).
		Return([]domain.Service{svcHaircut(), svcManicure()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)

	s := newTestService(services, stylists, new(MockAppointmentRepo), nil, nil)

	preferred := int64(1)
	_, err := s.ValidateBooking(context.Background(), []int64{1, 2}, bookDate, 10*60, &preferred, 0)

	assert.ErrorIs(t, err, ErrMissingSpecialty)
	var missing *MissingSpecialtyError
	assert.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"Nails"}, missing.Categories)
}

func TestValidateBooking_StylistUnavailable(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)

	off := stylistHair()
	off.IsAvailable = false

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(off, nil)

	s := newTestService(services, stylists, new(MockAppointmentRepo), nil, nil)

	preferred := int64(1)
	_, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 10*60, &preferred, 0)
	assert.ErrorIs(t, err, ErrStylistUnavailable)
}

func TestValidateBooking_OutsideWorkingHours(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)

	s := newTestService(services, stylists, new(MockAppointmentRepo), nil, nil)

	// 17:30 + 60min runs past the 18:00 end of shift
	preferred := int64(1)
	_, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 17*60+30, &preferred, 0)
	assert.ErrorIs(t, err, ErrOutsideWorkingHours)
}

func TestValidateBooking_EndingExactlyAtShiftEndIsAllowed(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).Return([]domain.Appointment{}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	v, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 17*60, &preferred, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.Stylist.ID)
}

func TestValidateBooking_SlotConflict(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).
		Return([]domain.Appointment{occupying(50, "10:30", 60)}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	_, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 10*60, &preferred, 0)
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestValidateBooking_TouchingIntervalsDoNotConflict(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	// existing 10:00-11:00; new booking starts exactly at 11:00
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).
		Return([]domain.Appointment{occupying(50, "10:00", 60)}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	v, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 11*60, &preferred, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v.Stylist.ID)
}

func TestValidateBooking_AutoAssignPicksLowestFreeStylist(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("FindQualified", mock.Anything, []int64{1}).
		Return([]domain.Stylist{*stylistHair(), *stylistAllRounder()}, nil)
	// stylist 1 busy, stylist 2 free
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).
		Return([]domain.Appointment{occupying(50, "10:00", 60)}, nil)
	appts.On("FindOccupying", mock.Anything, int64(2), bookDate, int64(0)).
		Return([]domain.Appointment{}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	v, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 10*60, nil, 0)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), v.Stylist.ID)
}

func TestValidateBooking_NoQualifiedStylist(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)

	services.On("GetByIDs", mock.Anything, []int64{2}).Return([]domain.Service{svcManicure()}, nil)
	stylists.On("FindQualified", mock.Anything, []int64{2}).Return([]domain.Stylist{}, nil)

	s := newTestService(services, stylists, new(MockAppointmentRepo), nil, nil)

	_, err := s.ValidateBooking(context.Background(), []int64{2}, bookDate, 10*60, nil, 0)
	assert.ErrorIs(t, err, ErrNoQualifiedStylist)
}

func TestValidateBooking_AllCandidatesBusy(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("FindQualified", mock.Anything, []int64{1}).
		Return([]domain.Stylist{*stylistHair()}, nil)
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).
		Return([]domain.Appointment{occupying(50, "10:00", 60)}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	_, err := s.ValidateBooking(context.Background(), []int64{1}, bookDate, 10*60, nil, 0)
	assert.ErrorIs(t, err, ErrNoAvailableSlot)
}

func TestValidateBooking_PastTime(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	appts.On("FindOccupying", mock.Anything, int64(1), mock.Anything, int64(0)).
		Return([]domain.Appointment{}, nil)

	s := newTestService(services, stylists, appts, nil, nil)

	// now is 2026-09-01 12:00; 10:00 the same day is already gone
	yesterday := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	preferred := int64(1)
	_, err := s.ValidateBooking(context.Background(), []int64{1}, yesterday, 10*60, &preferred, 0)
	assert.ErrorIs(t, err, ErrAppointmentInPast)
}

// Create / Reschedule

func TestCreateAppointment_FreezesTotalsAndNotifies(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)
	notifier := new(MockNotifier)

	all := stylistAllRounder()
	services.On("GetByIDs", mock.Anything, []int64{1, 2}).
		Return([]domain.Service{svcHaircut(), svcManicure()}, nil)
	stylists.On("GetByID", mock.Anything, int64(2)).Return(all, nil)
	appts.On("FindOccupying", mock.Anything, int64(2), bookDate, int64(0)).Return([]domain.Appointment{}, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifier.On("NotifyBookingCreated", int64(22), int64(77), "2026-09-02", "11:00").Return()

	s := newTestService(services, stylists, appts, nil, notifier)

	preferred := int64(2)
	a, err := s.CreateAppointment(context.Background(), 100, CreateAppointmentRequest{
		ServiceIDs:      []int64{1, 2},
		AppointmentDate: "2026-09-02",
		AppointmentTime: "11:00",
		StylistID:       &preferred,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentPending, a.Status)
	assert.Equal(t, 90, a.DurationMinutes)
	assert.Equal(t, 15000.0, a.TotalPrice)
	assert.Equal(t, "11:00", a.AppointmentTime)
	notifier.AssertExpectations(t)
}

func TestCreateAppointment_RaceLostMapsToSlotConflict(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(0)).Return([]domain.Appointment{}, nil)
	appts.On("Create", mock.Anything, mock.Anything).Return(repository.ErrSlotTaken)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	_, err := s.CreateAppointment(context.Background(), 100, CreateAppointmentRequest{
		ServiceIDs:      []int64{1},
		AppointmentDate: "2026-09-02",
		AppointmentTime: "10:00",
		StylistID:       &preferred,
	})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestReschedule_ExcludesOwnRowFromConflictScan(t *testing.T) {
	services := new(MockServiceRepo)
	stylists := new(MockStylistRepo)
	appts := new(MockAppointmentRepo)

	stylistID := int64(1)
	existing := &domain.Appointment{
		ID:              5,
		CustomerID:      100,
		StylistID:       &stylistID,
		AppointmentDate: bookDate,
		AppointmentTime: "10:00",
		DurationMinutes: 60,
		Status:          domain.AppointmentApproved,
	}

	appts.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)
	services.On("GetByIDs", mock.Anything, []int64{1}).Return([]domain.Service{svcHaircut()}, nil)
	stylists.On("GetByID", mock.Anything, int64(1)).Return(stylistHair(), nil)
	// the conflict scan must skip row 5: same slot re-validated against itself
	appts.On("FindOccupying", mock.Anything, int64(1), bookDate, int64(5)).
		Return([]domain.Appointment{}, nil)
	appts.On("Reschedule", mock.Anything, mock.Anything).Return(nil)

	s := newTestService(services, stylists, appts, nil, nil)

	preferred := int64(1)
	a, err := s.Reschedule(context.Background(), 100, domain.RoleCustomer, 5, RescheduleRequest{
		ServiceIDs:      []int64{1},
		AppointmentDate: "2026-09-02",
		AppointmentTime: "10:00",
		StylistID:       &preferred,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentRescheduled, a.Status)
	appts.AssertCalled(t, "FindOccupying", mock.Anything, int64(1), bookDate, int64(5))
}

func TestReschedule_ForbiddenForOtherCustomer(t *testing.T) {
	appts := new(MockAppointmentRepo)
	existing := &domain.Appointment{ID: 5, CustomerID: 100, Status: domain.AppointmentApproved}
	appts.On("GetByID", mock.Anything, int64(5)).Return(existing, nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, nil)

	_, err := s.Reschedule(context.Background(), 999, domain.RoleCustomer, 5, RescheduleRequest{
		ServiceIDs:      []int64{1},
		AppointmentDate: "2026-09-02",
		AppointmentTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

// Status lifecycle

func TestUpdateStatus_ApprovePending(t *testing.T) {
	appts := new(MockAppointmentRepo)
	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentPending}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentApproved).Return(nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, nil)

	a, err := s.UpdateStatus(context.Background(), 5, domain.AppointmentApproved)
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentApproved, a.Status)
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	appts := new(MockAppointmentRepo)
	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, Status: domain.AppointmentCompleted}, nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, nil)

	_, err := s.UpdateStatus(context.Background(), 5, domain.AppointmentApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatus_CompletionAwardsLoyaltyPoints(t *testing.T) {
	appts := new(MockAppointmentRepo)
	loyalty := new(MockLoyalty)

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, CustomerID: 100, TotalPrice: 15000, Status: domain.AppointmentApproved}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentCompleted).Return(nil)
	loyalty.On("Earn", mock.Anything, int64(100), int64(15000), "appointment #5").Return(nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, loyalty, nil)

	_, err := s.UpdateStatus(context.Background(), 5, domain.AppointmentCompleted)
	assert.NoError(t, err)
	loyalty.AssertExpectations(t)
}

func TestUpdateStatus_CompletionSurvivesFailedAward(t *testing.T) {
	appts := new(MockAppointmentRepo)
	loyalty := new(MockLoyalty)

	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, CustomerID: 100, TotalPrice: 15000, Status: domain.AppointmentApproved}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentCompleted).Return(nil)
	loyalty.On("Earn", mock.Anything, int64(100), int64(15000), "appointment #5").
		Return(errors.New("ledger unavailable"))

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, loyalty, nil)

	a, err := s.UpdateStatus(context.Background(), 5, domain.AppointmentCompleted)
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCompleted, a.Status)
	loyalty.AssertExpectations(t)
}

func TestCancelByCustomer_OwnPendingAppointment(t *testing.T) {
	appts := new(MockAppointmentRepo)
	notifier := new(MockNotifier)

	stylistID := int64(1)
	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{
			ID:         5,
			CustomerID: 100,
			StylistID:  &stylistID,
			Stylist:    stylistHair(),
			Status:     domain.AppointmentPending,
		}, nil)
	appts.On("UpdateStatus", mock.Anything, int64(5), domain.AppointmentCancelled).Return(nil)
	notifier.On("NotifyBookingCancelled", int64(11), int64(5)).Return()

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, notifier)

	a, err := s.CancelByCustomer(context.Background(), 100, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.AppointmentCancelled, a.Status)
	notifier.AssertExpectations(t)
}

func TestCancelByCustomer_CompletedCannotBeCancelled(t *testing.T) {
	appts := new(MockAppointmentRepo)
	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, CustomerID: 100, Status: domain.AppointmentCompleted}, nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, nil)

	_, err := s.CancelByCustomer(context.Background(), 100, 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCancelByCustomer_ForeignAppointment(t *testing.T) {
	appts := new(MockAppointmentRepo)
	appts.On("GetByID", mock.Anything, int64(5)).
		Return(&domain.Appointment{ID: 5, CustomerID: 100, Status: domain.AppointmentPending}, nil)

	s := newTestService(new(MockServiceRepo), new(MockStylistRepo), appts, nil, nil)

	_, err := s.CancelByCustomer(context.Background(), 999, 5)
	assert.ErrorIs(t, err, ErrForbidden)
}
