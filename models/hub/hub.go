package hub

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hub is a fleet grouping a company can be attached to by an admin.
type Hub struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	InviteCode string `gorm:"type:varchar(50);uniqueIndex" json:"invite_code,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Hub) TableName() string {
	return "hubs"
}

func (h *Hub) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
