package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type PromotionRepository struct {
	db *gorm.DB
}

func NewPromotionRepository(db *gorm.DB) *PromotionRepository {
	return &PromotionRepository{db: db}
}

func (r *PromotionRepository) Create(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PromotionRepository) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	var p domain.Promotion
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListActive returns promotions currently inside their validity window.
func (r *PromotionRepository) ListActive(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	var promos []domain.Promotion
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("valid_from <= ?", now).
		Where("valid_until IS NULL OR valid_until >= ?", now).
		Order("id").
		Find(&promos).Error
	return promos, err
}

func (r *PromotionRepository) ListAll(ctx context.Context) ([]domain.Promotion, error) {
	var promos []domain.Promotion
	err := r.db.WithContext(ctx).Order("id").Find(&promos).Error
	return promos, err
}

func (r *PromotionRepository) Update(ctx context.Context, p *domain.Promotion) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *PromotionRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Promotion{}, id).Error
}
