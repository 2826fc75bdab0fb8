package partner

import (
	"context"

	companyModel "vtc-onboarding/models/company"
	driverModel "vtc-onboarding/models/driver"
	partnerModel "vtc-onboarding/models/partner"
	vehicleModel "vtc-onboarding/models/vehicle"
)

// Default pricing applied when the applicant left the optional fields
// empty, at the moment the vehicle settings row is created.
const (
	defaultDepositPercent = 30
	rate8hFactor          = 2
)

// Review applies an admin decision to a pending application. Approval
// fans out into company, driver, vehicle and vehicle settings, each
// created at most once (lookup by natural key first), then flips the
// status — all in one transaction, so a cascade failure leaves the
// application pending and nothing half-created.
func (s *Service) Review(ctx context.Context, id string, status partnerModel.Status, adminNotes string) error {
	if status != partnerModel.StatusApproved && status != partnerModel.StatusRejected {
		return ErrInvalidDecision
	}

	return s.store.Transaction(ctx, func(tx Store) error {
		application, err := tx.GetPartnerByID(ctx, id)
		if err != nil {
			return err
		}
		if application == nil {
			return ErrNotFound
		}
		if !application.Status.CanBeReviewed() {
			return ErrAlreadyProcessed
		}

		if status == partnerModel.StatusApproved {
			if err := approveCascade(ctx, tx, application); err != nil {
				return err
			}
		}

		application.Status = status
		application.AdminNotes = adminNotes
		if err := tx.UpdatePartner(ctx, application); err != nil {
			return err
		}
		return tx.CreateStatusEvent(ctx, &partnerModel.StatusEvent{
			PartnerID: application.ID,
			Status:    status,
			CreatedBy: "admin",
		})
	})
}

// approveCascade creates the four derived records in strict order:
// company, driver, vehicle, vehicle settings.
func approveCascade(ctx context.Context, tx Store, application *partnerModel.Partner) error {
	company, err := tx.FindCompanyByEmail(ctx, application.Email)
	if err != nil {
		return err
	}
	if company == nil {
		legalName := application.CompanyName
		if legalName == "" {
			legalName = application.FirstName + " " + application.LastName
		}
		accountType := "solo"
		if application.AccountType == "Société" {
			accountType = "team"
		}
		company = &companyModel.Company{
			LegalName:   legalName,
			Email:       application.Email,
			Phone:       application.Phone,
			AccountType: accountType,
			IsActive:    true,
		}
		if err := tx.CreateCompany(ctx, company); err != nil {
			return err
		}
	}

	drv, err := tx.FindDriverByEmail(ctx, application.Email)
	if err != nil {
		return err
	}
	if drv == nil {
		drv = &driverModel.Driver{
			CompanyID:                 company.ID,
			FirstName:                 application.FirstName,
			LastName:                  application.LastName,
			Email:                     application.Email,
			Phone:                     application.Phone,
			ProfessionalLicenseNumber: application.ProfessionalLicenseNumber,
			Status:                    "active",
			IsAvailable:               true,
		}
		if err := tx.CreateDriver(ctx, drv); err != nil {
			return err
		}
	}

	veh, err := tx.FindVehicleByDriverID(ctx, drv.ID)
	if err != nil {
		return err
	}
	if veh == nil {
		veh = &vehicleModel.Vehicle{
			CompanyID:         company.ID,
			DriverID:          drv.ID,
			Category:          application.VehicleCategory,
			Model:             application.VehicleModel,
			Immatriculation:   application.Immatriculation,
			PassengerCapacity: application.PassengerCapacity,
			LuggageCapacity:   application.LuggageCapacity,
			IsActive:          true,
		}
		if err := tx.CreateVehicle(ctx, veh); err != nil {
			return err
		}
	}

	settings, err := tx.FindSettingsByVehicleID(ctx, veh.ID)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = &vehicleModel.Settings{
			VehicleID:      veh.ID,
			PricingModel:   application.PricingModel,
			Rate4h:         application.Rate4h,
			Rate8h:         orDefault(application.Rate8h, application.Rate4h*rate8hFactor),
			IncludedKm:     orDefault(application.IncludedKm, 0),
			ExtraKmPrice:   orDefault(application.ExtraKmPrice, 0),
			DepositPercent: orDefault(application.DepositPercent, defaultDepositPercent),
			PaymentTiming:  application.PaymentTiming,
			ServiceArea:    application.ServiceArea,
		}
		if err := tx.CreateSettings(ctx, settings); err != nil {
			return err
		}
	}

	return nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
