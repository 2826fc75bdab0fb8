package seeders

import (
	"vtc-onboarding/logger"
	hubModel "vtc-onboarding/models/hub"

	"gorm.io/gorm"
)

// SeedHubs inserts the default fleet hubs when the table is empty.
func SeedHubs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&hubModel.Hub{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hubs := []hubModel.Hub{
		{Name: "Paris Centre", InviteCode: "HUB-PARIS"},
		{Name: "Orly / Rungis", InviteCode: "HUB-ORLY"},
		{Name: "Roissy CDG", InviteCode: "HUB-CDG"},
	}

	for _, h := range hubs {
		hub := h
		if err := db.Create(&hub).Error; err != nil {
			return err
		}
	}

	logger.Success("Seeded default hubs")
	return nil
}
