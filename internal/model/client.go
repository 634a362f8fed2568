package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientStatus is the lifecycle state of a client.
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client represents a company work is billed to.
type Client struct {
	ID               uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	Name             string         `json:"name" gorm:"size:255;not null;index"`
	VATNumber        string         `json:"vat_number" gorm:"size:50"`
	BillingAddress   string         `json:"billing_address" gorm:"size:255"`
	MainContactName  string         `json:"main_contact_name" gorm:"size:255"`
	MainContactPhone string         `json:"main_contact_phone" gorm:"size:50"`
	Email            string         `json:"email" gorm:"size:255"`
	Status           ClientStatus   `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Notes            string         `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
