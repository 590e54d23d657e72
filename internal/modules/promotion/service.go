package promotion

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"glowsalon/internal/domain"
)

var (
	ErrPromotionNotFound = errors.New("promotion_not_found")
	ErrInvalidPromoType  = errors.New("invalid_promo_type")
	ErrInvalidWindow     = errors.New("invalid_validity_window")
)

type Repository interface {
	Create(ctx context.Context, p *domain.Promotion) error
	GetByID(ctx context.Context, id int64) (*domain.Promotion, error)
	ListActive(ctx context.Context, now time.Time) ([]domain.Promotion, error)
	ListAll(ctx context.Context) ([]domain.Promotion, error)
	Update(ctx context.Context, p *domain.Promotion) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	promos Repository
	now    func() time.Time
}

func NewService(promos Repository) *Service {
	return &Service{promos: promos, now: time.Now}
}

type CreatePromotionRequest struct {
	Name                string               `json:"name" validate:"required"`
	Description         string               `json:"description"`
	PromoType           domain.PromotionType `json:"promo_type" validate:"required"`
	DiscountValue       float64              `json:"discount_value" validate:"gte=0"`
	ValidFrom           time.Time            `json:"valid_from"`
	ValidUntil          *time.Time           `json:"valid_until"`
	MinimumBookingPrice float64              `json:"minimum_booking_price"`
}

type UpdatePromotionRequest struct {
	Name                *string    `json:"name"`
	Description         *string    `json:"description"`
	DiscountValue       *float64   `json:"discount_value"`
	IsActive            *bool      `json:"is_active"`
	ValidFrom           *time.Time `json:"valid_from"`
	ValidUntil          *time.Time `json:"valid_until"`
	MinimumBookingPrice *float64   `json:"minimum_booking_price"`
}

func (s *Service) Create(ctx context.Context, req CreatePromotionRequest) (*domain.Promotion, error) {
	if !req.PromoType.Valid() {
		return nil, ErrInvalidPromoType
	}
	validFrom := req.ValidFrom
	if validFrom.IsZero() {
		validFrom = s.now()
	}
	if req.ValidUntil != nil && req.ValidUntil.Before(validFrom) {
		return nil, ErrInvalidWindow
	}

	p := &domain.Promotion{
		Name:                strings.TrimSpace(req.Name),
		Description:         req.Description,
		PromoType:           req.PromoType,
		DiscountValue:       req.DiscountValue,
		IsActive:            true,
		ValidFrom:           validFrom,
		ValidUntil:          req.ValidUntil,
		MinimumBookingPrice: req.MinimumBookingPrice,
	}
	if err := s.promos.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListActive returns the promotions visible to customers right now.
func (s *Service) ListActive(ctx context.Context) ([]domain.Promotion, error) {
	return s.promos.ListActive(ctx, s.now())
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Promotion, error) {
	return s.promos.ListAll(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePromotionRequest) (*domain.Promotion, error) {
	p, err := s.promos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromotionNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.DiscountValue != nil {
		p.DiscountValue = *req.DiscountValue
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	if req.ValidFrom != nil {
		p.ValidFrom = *req.ValidFrom
	}
	if req.ValidUntil != nil {
		p.ValidUntil = req.ValidUntil
	}
	if p.ValidUntil != nil && p.ValidUntil.Before(p.ValidFrom) {
		return nil, ErrInvalidWindow
	}

	if err := s.promos.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.promos.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromotionNotFound
		}
		return err
	}
	return s.promos.Delete(ctx, id)
}
