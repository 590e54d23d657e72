package domain

import "time"

type Review struct {
	ID            int64        `json:"id" gorm:"primaryKey"`
	AppointmentID int64        `json:"appointment_id" gorm:"uniqueIndex;not null"`
	Appointment   *Appointment `json:"appointment,omitempty" gorm:"foreignKey:AppointmentID"`
	CustomerID    int64        `json:"customer_id" gorm:"not null;index"`
	Customer      *User        `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	StylistID     int64        `json:"stylist_id" gorm:"not null;index"`
	Stylist       *Stylist     `json:"stylist,omitempty" gorm:"foreignKey:StylistID"`
	Rating        int          `json:"rating" gorm:"not null" validate:"gte=1,lte=5"`
	Comment       string       `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt     time.Time    `json:"created_at"`
}
