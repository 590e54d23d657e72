package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type Service struct {
	reviews      ReviewRepository
	appointments AppointmentReader
}

func NewService(reviews ReviewRepository, appointments AppointmentReader) *Service {
	return &Service{reviews: reviews, appointments: appointments}
}

// Create accepts one review per completed appointment, written by the
// customer who attended it.
func (s *Service) Create(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	a, err := s.appointments.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	if a.CustomerID != customerID {
		return nil, ErrNotYourAppointment
	}
	if a.Status != domain.AppointmentCompleted {
		return nil, ErrAppointmentNotDone
	}
	if a.StylistID == nil {
		return nil, ErrAppointmentUnstaffed
	}

	exists, err := s.reviews.ExistsForAppointment(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rv := &domain.Review{
		AppointmentID: a.ID,
		CustomerID:    customerID,
		StylistID:     *a.StylistID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return s.reviews.GetByID(ctx, rv.ID)
}

func (s *Service) ListByStylist(ctx context.Context, stylistID int64, limit, offset int) ([]domain.Review, float64, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := s.reviews.ListByStylist(ctx, stylistID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	avg, count, err := s.reviews.RatingSummary(ctx, stylistID)
	if err != nil {
		return nil, 0, 0, err
	}
	return reviews, avg, count, nil
}
