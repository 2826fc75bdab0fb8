package partner

import (
	"strings"

	partnerModel "vtc-onboarding/models/partner"
	partnerTypes "vtc-onboarding/types/partner"
)

const defaultPhonePrefix = "+33"

// ToRecord maps a validated camelCase submission onto the snake_case
// store row. The mapping is total: every schema field has exactly one
// destination column. Composed "Autres" tags are merged into their
// checklist before joining; unset optional numbers stay NULL.
func ToRecord(req *partnerTypes.SubmissionRequest) *partnerModel.Partner {
	prefix := strings.TrimSpace(req.PhonePrefix)
	if prefix == "" {
		prefix = defaultPhonePrefix
	}

	return &partnerModel.Partner{
		Status: partnerModel.StatusPending,

		FirstName:                 strings.TrimSpace(req.FirstName),
		LastName:                  strings.TrimSpace(req.LastName),
		Email:                     strings.TrimSpace(req.Email),
		Phone:                     prefix + strings.TrimSpace(req.Phone),
		ProfessionalLicenseNumber: strings.TrimSpace(req.ProfessionalLicenseNumber),

		CompanyName: strings.TrimSpace(req.CompanyName),
		AccountType: req.AccountType,

		VehicleCategory:   req.VehicleCategory,
		VehicleModel:      strings.TrimSpace(req.VehicleModel),
		Immatriculation:   strings.TrimSpace(req.Immatriculation),
		PassengerCapacity: req.PassengerCapacity.Int(),
		LuggageCapacity:   req.LuggageCapacity.Int(),

		PricingModel:   req.PricingModel,
		Rate4h:         req.Rate4h.Or(0),
		Rate8h:         req.Rate8h.Ptr(),
		IncludedKm:     req.IncludedKm.Ptr(),
		ExtraKmPrice:   req.ExtraKmPrice.Ptr(),
		DepositPercent: req.DepositPercent.Ptr(),
		PaymentTiming:  req.PaymentTiming,
		ServiceArea:    req.ServiceArea,

		BookingChannels:    joinChecklist(req.BookingChannels, nil),
		LeadTimeHours:      req.LeadTimeHours.Ptr(),
		CriticalInfo:       joinChecklist(req.CriticalInfo, req.CriticalInfoOther),
		SpokenLanguages:    joinChecklist(req.Languages, req.LanguagesOther),
		PremiumServices:    joinChecklist(req.PremiumServices, nil),
		CancellationPolicy: req.CancellationPolicy,
		PainPoints:         strings.TrimSpace(req.PainPoints),
	}
}

func joinChecklist(base, extra []string) string {
	return strings.Join(partnerTypes.MergeChecklist(base, extra), ", ")
}
