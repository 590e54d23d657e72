package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"glowsalon/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Upsert(ctx context.Context, s *domain.SalonSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
		}).
		Create(s).Error
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*domain.SalonSetting, error) {
	var s domain.SalonSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) List(ctx context.Context) ([]domain.SalonSetting, error) {
	var settings []domain.SalonSetting
	err := r.db.WithContext(ctx).Order("key").Find(&settings).Error
	return settings, err
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Where("key = ?", key).Delete(&domain.SalonSetting{}).Error
}
