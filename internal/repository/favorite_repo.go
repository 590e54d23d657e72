package repository

import (
	"context"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) Add(ctx context.Context, f *domain.FavoriteStylist) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FavoriteRepository) Remove(ctx context.Context, customerID, stylistID int64) error {
	res := r.db.WithContext(ctx).
		Where("customer_id = ? AND stylist_id = ?", customerID, stylistID).
		Delete(&domain.FavoriteStylist{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *FavoriteRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.FavoriteStylist, error) {
	var favs []domain.FavoriteStylist
	err := r.db.WithContext(ctx).
		Preload("Stylist.User").
		Preload("Stylist.Specialties").
		Where("customer_id = ?", customerID).
		Order("added_at DESC").
		Find(&favs).Error
	return favs, err
}

func (r *FavoriteRepository) Exists(ctx context.Context, customerID, stylistID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.FavoriteStylist{}).
		Where("customer_id = ? AND stylist_id = ?", customerID, stylistID).
		Count(&n).Error
	return n > 0, err
}
