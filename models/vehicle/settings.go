package vehicle

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings holds the pricing configuration of one vehicle. One row per
// vehicle, created together with it during the approval cascade.
type Settings struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	VehicleID string `gorm:"type:uuid;not null;index" json:"vehicle_id"`

	PricingModel   string  `gorm:"type:varchar(50);not null" json:"pricing_model"`
	Rate4h         float64 `gorm:"not null;default:0" json:"rate_4h"`
	Rate8h         float64 `gorm:"not null;default:0" json:"rate_8h"`
	IncludedKm     float64 `gorm:"not null;default:0" json:"included_km"`
	ExtraKmPrice   float64 `gorm:"not null;default:0" json:"extra_km_price"`
	DepositPercent float64 `gorm:"not null;default:0" json:"deposit_percent"`
	PaymentTiming  string  `gorm:"type:varchar(50);not null" json:"payment_timing"`
	ServiceArea    string  `gorm:"type:varchar(50);not null" json:"service_area"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Settings) TableName() string {
	return "vehicle_settings"
}

func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
