package repository

import (
	"context"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).Preload("Customer").First(&rv, id).Error
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepository) ExistsForAppointment(ctx context.Context, appointmentID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("appointment_id = ?", appointmentID).
		Count(&n).Error
	return n > 0, err
}

func (r *ReviewRepository) ListByStylist(ctx context.Context, stylistID int64, limit, offset int) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Preload("Customer").
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error
	return reviews, err
}

// RatingSummary returns the average rating and review count for a stylist.
func (r *ReviewRepository) RatingSummary(ctx context.Context, stylistID int64) (float64, int64, error) {
	var row struct {
		Avg *float64
		Cnt int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("AVG(rating) AS avg, COUNT(*) AS cnt").
		Where("stylist_id = ?", stylistID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	avg := 0.0
	if row.Avg != nil {
		avg = *row.Avg
	}
	return avg, row.Cnt, nil
}

func (r *ReviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
