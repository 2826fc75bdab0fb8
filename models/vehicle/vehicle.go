package vehicle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle represents a partner vehicle created on approval.
type Vehicle struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyID string `gorm:"type:uuid;not null;index" json:"company_id"`
	DriverID  string `gorm:"type:uuid;not null;index" json:"driver_id"`

	Category          string `gorm:"type:varchar(50);not null" json:"category"`
	Model             string `gorm:"type:varchar(255);not null" json:"model"`
	Immatriculation   string `gorm:"type:varchar(20);not null" json:"immatriculation"`
	PassengerCapacity int    `gorm:"not null" json:"passenger_capacity"`
	LuggageCapacity   int    `gorm:"not null" json:"luggage_capacity"`

	Photo    string `gorm:"type:varchar(100)" json:"photo,omitempty"`
	IsActive bool   `gorm:"not null;default:false" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
