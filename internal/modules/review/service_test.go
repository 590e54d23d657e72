package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	args := m.Called(ctx, rv)
	if rv != nil && args.Error(0) == nil {
		rv.ID = 9
	}
	return args.Error(0)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepo) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	args := m.Called(ctx, appointmentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepo) ListByStylist(ctx context.Context, stylistID int64, limit, offset int) ([]domain.Review, error) {
	args := m.Called(ctx, stylistID, limit, offset)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepo) RatingSummary(ctx context.Context, stylistID int64) (float64, int64, error) {
	args := m.Called(ctx, stylistID)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockAppointmentReader struct {
	mock.Mock
}

func (m *MockAppointmentReader) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Appointment), args.Error(1)
}

func completedAppointment() *domain.Appointment {
	stylistID := int64(3)
	return &domain.Appointment{
		ID:         5,
		CustomerID: 100,
		StylistID:  &stylistID,
		Status:     domain.AppointmentCompleted,
	}
}

func TestCreateReview_Success(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	appts.On("GetByID", mock.Anything, int64(5)).Return(completedAppointment(), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(5)).Return(false, nil)
	// the stylist is taken from the appointment, not from the request
	reviews.On("Create", mock.Anything, mock.MatchedBy(func(rv *domain.Review) bool {
		return rv.StylistID == 3 && rv.CustomerID == 100 && rv.AppointmentID == 5
	})).Return(nil)
	reviews.On("GetByID", mock.Anything, int64(9)).
		Return(&domain.Review{ID: 9, AppointmentID: 5, CustomerID: 100, StylistID: 3, Rating: 5}, nil)

	s := NewService(reviews, appts)

	rv, err := s.Create(context.Background(), 100, CreateReviewRequest{AppointmentID: 5, Rating: 5, Comment: "great"})
	assert.NoError(t, err)
	assert.Equal(t, int64(3), rv.StylistID)
	reviews.AssertExpectations(t)
}

func TestCreateReview_RequiresCompletedAppointment(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	a := completedAppointment()
	a.Status = domain.AppointmentApproved
	appts.On("GetByID", mock.Anything, int64(5)).Return(a, nil)

	s := NewService(reviews, appts)

	_, err := s.Create(context.Background(), 100, CreateReviewRequest{AppointmentID: 5, Rating: 4})
	assert.ErrorIs(t, err, ErrAppointmentNotDone)
}

func TestCreateReview_OnlyByOwner(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	appts.On("GetByID", mock.Anything, int64(5)).Return(completedAppointment(), nil)

	s := NewService(reviews, appts)

	_, err := s.Create(context.Background(), 200, CreateReviewRequest{AppointmentID: 5, Rating: 4})
	assert.ErrorIs(t, err, ErrNotYourAppointment)
}

func TestCreateReview_OncePerAppointment(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	appts.On("GetByID", mock.Anything, int64(5)).Return(completedAppointment(), nil)
	reviews.On("ExistsForAppointment", mock.Anything, int64(5)).Return(true, nil)

	s := NewService(reviews, appts)

	_, err := s.Create(context.Background(), 100, CreateReviewRequest{AppointmentID: 5, Rating: 4})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReview_UnknownAppointment(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	appts.On("GetByID", mock.Anything, int64(77)).Return(nil, gorm.ErrRecordNotFound)

	s := NewService(reviews, appts)

	_, err := s.Create(context.Background(), 100, CreateReviewRequest{AppointmentID: 77, Rating: 4})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestListByStylist_ClampsPaging(t *testing.T) {
	reviews := new(MockReviewRepo)
	appts := new(MockAppointmentReader)
	reviews.On("ListByStylist", mock.Anything, int64(3), 20, 0).
		Return([]domain.Review{{ID: 1, StylistID: 3, Rating: 5}}, nil)
	reviews.On("RatingSummary", mock.Anything, int64(3)).Return(4.5, int64(12), nil)

	s := NewService(reviews, appts)

	got, avg, count, err := s.ListByStylist(context.Background(), 3, -1, -5)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, int64(12), count)
}
