package repository

import (
	"context"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type StylistRepository struct {
	db *gorm.DB
}

func NewStylistRepository(db *gorm.DB) *StylistRepository {
	return &StylistRepository{db: db}
}

func (r *StylistRepository) Create(ctx context.Context, s *domain.Stylist) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *StylistRepository) GetByID(ctx context.Context, id int64) (*domain.Stylist, error) {
	var s domain.Stylist
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialties").
		First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StylistRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Stylist, error) {
	var s domain.Stylist
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialties").
		Where("user_id = ?", userID).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StylistRepository) List(ctx context.Context) ([]domain.Stylist, error) {
	var stylists []domain.Stylist
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialties").
		Order("id").
		Find(&stylists).Error
	return stylists, err
}

// FindQualified returns available stylists whose specialty set covers every
// one of the given categories. An empty category list is vacuously covered
// by every available stylist. Ordered by id so auto-assignment is
// deterministic.
func (r *StylistRepository) FindQualified(ctx context.Context, categoryIDs []int64) ([]domain.Stylist, error) {
	if len(categoryIDs) == 0 {
		var stylists []domain.Stylist
		err := r.db.WithContext(ctx).
			Preload("User").
			Preload("Specialties").
			Where("is_available = ?", true).
			Order("id").
			Find(&stylists).Error
		return stylists, err
	}

	var ids []int64
	err := r.db.WithContext(ctx).
		Table("stylists").
		Select("stylists.id").
		Joins("JOIN stylist_specialties ss ON ss.stylist_id = stylists.id").
		Where("stylists.is_available = ?", true).
		Where("ss.category_id IN ?", categoryIDs).
		Group("stylists.id").
		Having("COUNT(DISTINCT ss.category_id) = ?", len(categoryIDs)).
		Order("stylists.id").
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var stylists []domain.Stylist
	err = r.db.WithContext(ctx).
		Preload("User").
		Preload("Specialties").
		Where("id IN ?", ids).
		Order("id").
		Find(&stylists).Error
	return stylists, err
}

// FindBySpecialty returns available stylists covering a single category.
func (r *StylistRepository) FindBySpecialty(ctx context.Context, categoryID int64) ([]domain.Stylist, error) {
	return r.FindQualified(ctx, []int64{categoryID})
}

func (r *StylistRepository) Update(ctx context.Context, s *domain.Stylist) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// ReplaceSpecialties swaps the stylist's specialty set.
func (r *StylistRepository) ReplaceSpecialties(ctx context.Context, s *domain.Stylist, categories []domain.Category) error {
	return r.db.WithContext(ctx).Model(s).Association("Specialties").Replace(categories)
}

func (r *StylistRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Stylist{}).Count(&n).Error
	return n, err
}
