package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive ProjectStatus = "active"
	ProjectStatusClosed ProjectStatus = "closed"
)

// BillingMode describes how work is billed.
type BillingMode string

const (
	BillingModeHourly BillingMode = "hourly"
	BillingModeFixed  BillingMode = "fixed"
)

// Project is a job site belonging to exactly one client.
type Project struct {
	ID          uuid.UUID     `json:"id" gorm:"type:char(36);primaryKey"`
	ClientID    uuid.UUID     `json:"client_id" gorm:"type:char(36);not null;index"`
	Name        string        `json:"name" gorm:"size:255;not null;index"`
	Description string        `json:"description" gorm:"type:text"`
	Address     string        `json:"address,omitempty" gorm:"size:255"`
	Notes       string        `json:"notes,omitempty" gorm:"type:text"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`

	SiteContactName  string `json:"site_contact_name,omitempty" gorm:"size:255"`
	SiteContactPhone string `json:"site_contact_phone,omitempty" gorm:"size:50"`
	SiteContactEmail string `json:"site_contact_email,omitempty" gorm:"size:255"`
	SiteContactRole  string `json:"site_contact_role,omitempty" gorm:"size:100"`

	// SellingPrice is a per-hour amount when the agreement is hourly.
	// The aggregation layer only ever multiplies by it; the billing
	// mode itself is informational.
	FinancialAgreement BillingMode     `json:"financial_agreement,omitempty" gorm:"type:varchar(20)"`
	SellingPrice       decimal.Decimal `json:"selling_price" gorm:"type:decimal(20,2);not null;default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
