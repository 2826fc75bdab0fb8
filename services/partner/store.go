package partner

import (
	"context"
	"errors"
	"time"

	companyModel "vtc-onboarding/models/company"
	driverModel "vtc-onboarding/models/driver"
	partnerModel "vtc-onboarding/models/partner"
	vehicleModel "vtc-onboarding/models/vehicle"
)

var (
	// ErrAlreadyApproved signals a resubmission for an email whose
	// application was already approved. No mutation happens.
	ErrAlreadyApproved = errors.New("application already approved")

	// ErrNotFound signals an unknown partner id.
	ErrNotFound = errors.New("partner not found")

	// ErrAlreadyProcessed signals an admin decision on a record that
	// already left the pending state.
	ErrAlreadyProcessed = errors.New("application already processed")

	// ErrInvalidDecision signals an admin status outside approved/rejected.
	ErrInvalidDecision = errors.New("invalid decision status")
)

// Store is the narrow persistence surface the onboarding flow needs.
// Lookups return (nil, nil) when no row matches.
type Store interface {
	FindPartnerByEmail(ctx context.Context, email string) (*partnerModel.Partner, error)
	GetPartnerByID(ctx context.Context, id string) (*partnerModel.Partner, error)
	ListPartners(ctx context.Context, status partnerModel.Status, since *time.Time) ([]partnerModel.Partner, error)
	CreatePartner(ctx context.Context, p *partnerModel.Partner) error
	UpdatePartner(ctx context.Context, p *partnerModel.Partner) error
	CreateStatusEvent(ctx context.Context, e *partnerModel.StatusEvent) error

	FindCompanyByEmail(ctx context.Context, email string) (*companyModel.Company, error)
	CreateCompany(ctx context.Context, c *companyModel.Company) error
	UpdateCompanyHub(ctx context.Context, id string, hubID *string, accountType string) error

	FindDriverByEmail(ctx context.Context, email string) (*driverModel.Driver, error)
	CreateDriver(ctx context.Context, d *driverModel.Driver) error

	FindVehicleByDriverID(ctx context.Context, driverID string) (*vehicleModel.Vehicle, error)
	CreateVehicle(ctx context.Context, v *vehicleModel.Vehicle) error

	FindSettingsByVehicleID(ctx context.Context, vehicleID string) (*vehicleModel.Settings, error)
	CreateSettings(ctx context.Context, s *vehicleModel.Settings) error

	// Transaction runs fn atomically; every Store call inside fn sees
	// the same transaction.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}
