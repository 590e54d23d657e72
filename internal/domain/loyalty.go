package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LoyaltyEarn   = "EARN"
	LoyaltyRedeem = "REDEEM"
)

// LoyaltyAccount stores a customer's point balance.
type LoyaltyAccount struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID int64     `json:"customer_id" gorm:"not null;uniqueIndex"`
	Points     int64     `json:"points" gorm:"not null;default:0"`
	UpdatedAt  time.Time `json:"updated_at"`

	Customer *User `json:"customer,omitempty" gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (LoyaltyAccount) TableName() string { return "loyalty_accounts" }

func (a *LoyaltyAccount) BeforeCreate(_ *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// LoyaltyTransaction records every balance change.
type LoyaltyTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `json:"account_id" gorm:"type:uuid;not null;index"`
	Points    int64     `json:"points" gorm:"not null"`
	Type      string    `json:"type" gorm:"type:varchar(16);not null;index;check:type IN ('EARN','REDEEM')"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Account *LoyaltyAccount `json:"account,omitempty" gorm:"foreignKey:AccountID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (LoyaltyTransaction) TableName() string { return "loyalty_transactions" }

func (t *LoyaltyTransaction) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
