package domain

import "time"

type PromotionType string

const (
	PromoFirstTime         PromotionType = "first_time"
	PromoLoyaltyRedemption PromotionType = "loyalty_redemption"
	PromoPercentage        PromotionType = "percentage"
	PromoFixedAmount       PromotionType = "fixed_amount"
)

type Promotion struct {
	ID                  int64         `json:"id" gorm:"primaryKey"`
	Name                string        `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description         string        `json:"description,omitempty" gorm:"type:text"`
	PromoType           PromotionType `json:"promo_type" gorm:"type:varchar(32);not null"`
	DiscountValue       float64       `json:"discount_value"`
	IsActive            bool          `json:"is_active" gorm:"default:true"`
	ValidFrom           time.Time     `json:"valid_from"`
	ValidUntil          *time.Time    `json:"valid_until,omitempty"`
	MinimumBookingPrice float64       `json:"minimum_booking_price"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}

func (p PromotionType) Valid() bool {
	switch p {
	case PromoFirstTime, PromoLoyaltyRedemption, PromoPercentage, PromoFixedAmount:
		return true
	}
	return false
}
