package partner

import (
	"time"
)

// StatusEvent represents a status change event for a partner application
type StatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for partner relationship
	PartnerID string  `gorm:"type:uuid;not null;index" json:"partner_id"`
	Partner   Partner `gorm:"foreignKey:PartnerID" json:"partner"`

	Status    Status    `gorm:"size:20;not null" json:"status"`
	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName sets the table name for the StatusEvent model
func (StatusEvent) TableName() string {
	return "partner_status_events"
}
