package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Role defines what a user may do in the application.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleOperator   Role = "operator"
	RoleSupervisor Role = "supervisor"
)

// UserStatus is the account state of a user.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User represents a worker who can log in and appear on work reports.
type User struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null;index"`
	Username     string          `json:"username" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Email        string          `json:"email,omitempty" gorm:"size:255"`
	Role         Role            `json:"role" gorm:"type:varchar(20);not null;default:'operator';index"`
	Status       UserStatus      `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	HourlyRate   decimal.Decimal `json:"hourly_rate" gorm:"type:decimal(20,2);not null;default:0"`
	ExtraCost    decimal.Decimal `json:"extra_cost" gorm:"type:decimal(20,2);not null;default:0"`
	Phone        string          `json:"phone,omitempty" gorm:"size:50"`
	Address      string          `json:"address,omitempty" gorm:"size:255"`
	Notes        string          `json:"notes,omitempty" gorm:"type:text"`
	// Set when the user works through an external firm.
	SubcontractorID *uuid.UUID     `json:"subcontractor_id,omitempty" gorm:"type:char(36);index"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsActive reports whether the user may log in and be assigned work.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}
