package domain

import "time"

type FavoriteStylist struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	CustomerID int64     `json:"customer_id" gorm:"not null;uniqueIndex:idx_customer_stylist"`
	StylistID  int64     `json:"stylist_id" gorm:"not null;uniqueIndex:idx_customer_stylist"`
	Stylist    *Stylist  `json:"stylist,omitempty" gorm:"foreignKey:StylistID"`
	AddedAt    time.Time `json:"added_at" gorm:"autoCreateTime"`
}
