package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Subcontractor is an external firm a user may belong to.
type Subcontractor struct {
	ID            uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name          string          `json:"name" gorm:"size:255;not null;index"`
	VATNumber     string          `json:"vat_number" gorm:"size:50"`
	ContactPerson string          `json:"contact_person" gorm:"size:255"`
	Phone         string          `json:"phone" gorm:"size:50"`
	Email         string          `json:"email" gorm:"size:255"`
	Address       string          `json:"address,omitempty" gorm:"size:255"`
	BillingType   BillingMode     `json:"billing_type,omitempty" gorm:"type:varchar(20)"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,2);not null;default:0"`
	Status        UserStatus      `json:"status,omitempty" gorm:"type:varchar(20);default:'active'"`
	Notes         string          `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Subcontractor) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
