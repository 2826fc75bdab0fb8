package partner

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Partner represents a submitted onboarding application. Columns follow
// the store schema (snake_case); the request layer owns the camelCase
// naming and the mapping between the two.
type Partner struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	Status Status `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Driver identity
	FirstName                 string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName                  string `gorm:"type:varchar(255);not null" json:"last_name"`
	Email                     string `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Phone                     string `gorm:"type:varchar(30);not null" json:"phone"`
	ProfessionalLicenseNumber string `gorm:"type:varchar(100);not null" json:"professional_license_number"`

	// Company
	CompanyName string `gorm:"type:varchar(255);not null" json:"company_name"`
	AccountType string `gorm:"type:varchar(50);not null" json:"account_type"`

	// Vehicle
	VehicleCategory   string `gorm:"type:varchar(50);not null" json:"vehicle_category"`
	VehicleModel      string `gorm:"type:varchar(255);not null" json:"vehicle_model"`
	Immatriculation   string `gorm:"type:varchar(20);not null" json:"immatriculation"`
	PassengerCapacity int    `gorm:"not null" json:"passenger_capacity"`
	LuggageCapacity   int    `gorm:"not null" json:"luggage_capacity"`

	// Pricing
	PricingModel   string   `gorm:"type:varchar(50);not null" json:"pricing_model"`
	Rate4h         float64  `gorm:"not null;default:0" json:"rate_4h"`
	Rate8h         *float64 `json:"rate_8h,omitempty"`
	IncludedKm     *float64 `json:"included_km,omitempty"`
	ExtraKmPrice   *float64 `json:"extra_km_price,omitempty"`
	DepositPercent *float64 `json:"deposit_percent,omitempty"`
	PaymentTiming  string   `gorm:"type:varchar(50);not null" json:"payment_timing"`
	ServiceArea    string   `gorm:"type:varchar(50);not null" json:"service_area"`

	// Logistics (later form steps, all optional)
	BookingChannels    string   `gorm:"type:text" json:"booking_channels,omitempty"`
	LeadTimeHours      *float64 `json:"lead_time_hours,omitempty"`
	CriticalInfo       string   `gorm:"type:text" json:"critical_info,omitempty"`
	SpokenLanguages    string   `gorm:"type:text" json:"spoken_languages,omitempty"`
	PremiumServices    string   `gorm:"type:text" json:"premium_services,omitempty"`
	CancellationPolicy string   `gorm:"type:varchar(50)" json:"cancellation_policy,omitempty"`
	PainPoints         string   `gorm:"type:text" json:"pain_points,omitempty"`

	// Admin
	AppliedHubCode string `gorm:"type:varchar(50)" json:"applied_hub_code,omitempty"`
	AdminNotes     string `gorm:"type:text" json:"admin_notes,omitempty"`

	// Uploaded document references (asset ids in the file store). The
	// admin fetch endpoint rewrites these into download URLs.
	AssuranceFile  string `gorm:"type:varchar(100)" json:"assurance_file,omitempty"`
	CarteProFile   string `gorm:"type:varchar(100)" json:"carte_pro_file,omitempty"`
	RibFile        string `gorm:"type:varchar(100)" json:"rib_file,omitempty"`
	CarteGriseFile string `gorm:"type:varchar(100)" json:"carte_grise_file,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Partner model
func (Partner) TableName() string {
	return "onboarding_partners"
}

func (p *Partner) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
