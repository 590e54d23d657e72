package repository

import (
	"context"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *ServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var s domain.Service
	if err := r.db.WithContext(ctx).Preload("Category").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByIDs returns the requested services; callers compare lengths to
// detect unknown ids.
func (r *ServiceRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id IN ?", ids).
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) ListActive(ctx context.Context) ([]domain.Service, error) {
	var services []domain.Service
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true).
		Order("name").
		Find(&services).Error
	return services, err
}

func (r *ServiceRepository) Update(ctx context.Context, s *domain.Service) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *ServiceRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Service{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
