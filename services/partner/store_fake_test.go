package partner

import (
	"context"
	"errors"
	"time"

	companyModel "vtc-onboarding/models/company"
	driverModel "vtc-onboarding/models/driver"
	partnerModel "vtc-onboarding/models/partner"
	vehicleModel "vtc-onboarding/models/vehicle"

	"github.com/google/uuid"
)

// fakeStore is an in-memory Store. Reads return copies and writes
// store copies, mirroring row semantics; Transaction restores a
// snapshot on error, mirroring rollback.
type fakeStore struct {
	partners  []partnerModel.Partner
	events    []partnerModel.StatusEvent
	companies []companyModel.Company
	drivers   []driverModel.Driver
	vehicles  []vehicleModel.Vehicle
	settings  []vehicleModel.Settings

	failCreateVehicle bool
}

func (f *fakeStore) FindPartnerByEmail(_ context.Context, email string) (*partnerModel.Partner, error) {
	for _, p := range f.partners {
		if p.Email == email {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetPartnerByID(_ context.Context, id string) (*partnerModel.Partner, error) {
	for _, p := range f.partners {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListPartners(_ context.Context, status partnerModel.Status, since *time.Time) ([]partnerModel.Partner, error) {
	var out []partnerModel.Partner
	for _, p := range f.partners {
		if status != "" && p.Status != status {
			continue
		}
		if since != nil && p.CreatedAt.Before(*since) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) CreatePartner(_ context.Context, p *partnerModel.Partner) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	f.partners = append(f.partners, *p)
	return nil
}

func (f *fakeStore) UpdatePartner(_ context.Context, p *partnerModel.Partner) error {
	for i := range f.partners {
		if f.partners[i].ID == p.ID {
			f.partners[i] = *p
			return nil
		}
	}
	return errors.New("update of unknown partner")
}

func (f *fakeStore) CreateStatusEvent(_ context.Context, e *partnerModel.StatusEvent) error {
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeStore) FindCompanyByEmail(_ context.Context, email string) (*companyModel.Company, error) {
	for _, c := range f.companies {
		if c.Email == email {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateCompany(_ context.Context, c *companyModel.Company) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	f.companies = append(f.companies, *c)
	return nil
}

func (f *fakeStore) UpdateCompanyHub(_ context.Context, id string, hubID *string, accountType string) error {
	for i := range f.companies {
		if f.companies[i].ID == id {
			f.companies[i].HubID = hubID
			f.companies[i].AccountType = accountType
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeStore) FindDriverByEmail(_ context.Context, email string) (*driverModel.Driver, error) {
	for _, d := range f.drivers {
		if d.Email == email {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateDriver(_ context.Context, d *driverModel.Driver) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	f.drivers = append(f.drivers, *d)
	return nil
}

func (f *fakeStore) FindVehicleByDriverID(_ context.Context, driverID string) (*vehicleModel.Vehicle, error) {
	for _, v := range f.vehicles {
		if v.DriverID == driverID {
			cp := v
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateVehicle(_ context.Context, v *vehicleModel.Vehicle) error {
	if f.failCreateVehicle {
		return errors.New("vehicle insert rejected")
	}
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	f.vehicles = append(f.vehicles, *v)
	return nil
}

func (f *fakeStore) FindSettingsByVehicleID(_ context.Context, vehicleID string) (*vehicleModel.Settings, error) {
	for _, s := range f.settings {
		if s.VehicleID == vehicleID {
			cp := s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) CreateSettings(_ context.Context, s *vehicleModel.Settings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	f.settings = append(f.settings, *s)
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, fn func(tx Store) error) error {
	snapshot := *f
	snapshot.partners = append([]partnerModel.Partner(nil), f.partners...)
	snapshot.events = append([]partnerModel.StatusEvent(nil), f.events...)
	snapshot.companies = append([]companyModel.Company(nil), f.companies...)
	snapshot.drivers = append([]driverModel.Driver(nil), f.drivers...)
	snapshot.vehicles = append([]vehicleModel.Vehicle(nil), f.vehicles...)
	snapshot.settings = append([]vehicleModel.Settings(nil), f.settings...)

	if err := fn(f); err != nil {
		*f = snapshot
		return err
	}
	return nil
}
