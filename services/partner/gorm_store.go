package partner

import (
	"context"
	"errors"
	"time"

	companyModel "vtc-onboarding/models/company"
	driverModel "vtc-onboarding/models/driver"
	partnerModel "vtc-onboarding/models/partner"
	vehicleModel "vtc-onboarding/models/vehicle"

	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindPartnerByEmail(ctx context.Context, email string) (*partnerModel.Partner, error) {
	var p partnerModel.Partner
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) GetPartnerByID(ctx context.Context, id string) (*partnerModel.Partner, error) {
	var p partnerModel.Partner
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *GormStore) ListPartners(ctx context.Context, status partnerModel.Status, since *time.Time) ([]partnerModel.Partner, error) {
	q := s.db.WithContext(ctx).Model(&partnerModel.Partner{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if since != nil {
		q = q.Where("created_at >= ?", *since)
	}
	var partners []partnerModel.Partner
	if err := q.Find(&partners).Error; err != nil {
		return nil, err
	}
	return partners, nil
}

func (s *GormStore) CreatePartner(ctx context.Context, p *partnerModel.Partner) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *GormStore) UpdatePartner(ctx context.Context, p *partnerModel.Partner) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *GormStore) CreateStatusEvent(ctx context.Context, e *partnerModel.StatusEvent) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *GormStore) FindCompanyByEmail(ctx context.Context, email string) (*companyModel.Company, error) {
	var c companyModel.Company
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *GormStore) CreateCompany(ctx context.Context, c *companyModel.Company) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *GormStore) UpdateCompanyHub(ctx context.Context, id string, hubID *string, accountType string) error {
	result := s.db.WithContext(ctx).Model(&companyModel.Company{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"hub_id":       hubID,
			"account_type": accountType,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) FindDriverByEmail(ctx context.Context, email string) (*driverModel.Driver, error) {
	var d driverModel.Driver
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *GormStore) CreateDriver(ctx context.Context, d *driverModel.Driver) error {
	return s.db.WithContext(ctx).Create(d).Error
}

func (s *GormStore) FindVehicleByDriverID(ctx context.Context, driverID string) (*vehicleModel.Vehicle, error) {
	var v vehicleModel.Vehicle
	err := s.db.WithContext(ctx).Where("driver_id = ?", driverID).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *GormStore) CreateVehicle(ctx context.Context, v *vehicleModel.Vehicle) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *GormStore) FindSettingsByVehicleID(ctx context.Context, vehicleID string) (*vehicleModel.Settings, error) {
	var vs vehicleModel.Settings
	err := s.db.WithContext(ctx).Where("vehicle_id = ?", vehicleID).First(&vs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vs, nil
}

func (s *GormStore) CreateSettings(ctx context.Context, vs *vehicleModel.Settings) error {
	return s.db.WithContext(ctx).Create(vs).Error
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
