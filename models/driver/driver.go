package driver

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Driver represents an approved chauffeur attached to a company.
type Driver struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`

	FirstName                 string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName                  string `gorm:"type:varchar(255);not null" json:"last_name"`
	Email                     string `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone                     string `gorm:"type:varchar(30);not null" json:"phone"`
	ProfessionalLicenseNumber string `gorm:"type:varchar(100);not null" json:"professional_license_number"`

	Status      string `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	IsAvailable bool   `gorm:"not null;default:false" json:"is_available"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Driver) TableName() string {
	return "drivers"
}

func (d *Driver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
