package domain

import "time"

// SalonSetting is a free-form key/value store for admin-tunable knobs,
// e.g. "loyalty_points_per_booking" or "cancellation_policy".
type SalonSetting struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Key         string    `json:"key" gorm:"uniqueIndex;not null" validate:"required"`
	Value       string    `json:"value" gorm:"type:text;not null"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	UpdatedAt   time.Time `json:"updated_at"`
}
