package company

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents a partner company created on approval.
type Company struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	LegalName string `gorm:"type:varchar(255);not null" json:"legal_name"`
	Email     string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string `gorm:"type:varchar(30)" json:"phone,omitempty"`

	// solo: independent driver, team: multi-driver company,
	// driver: member of a hub fleet.
	AccountType string `gorm:"type:varchar(20);not null;default:'solo'" json:"account_type"`

	StripeAccountID string  `gorm:"type:varchar(100)" json:"stripe_account_id,omitempty"`
	HubID           *string `gorm:"type:uuid" json:"hub_id,omitempty"`
	IsActive        bool    `gorm:"not null;default:false" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
