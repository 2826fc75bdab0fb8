package partner

import (
	"reflect"
	"strings"
	"sync"

	"vtc-onboarding/constants"
	"vtc-onboarding/types"

	"github.com/go-playground/validator/v10"
)

// SubmissionRequest is the onboarding draft record as the form submits
// it: camelCase JSON keys, one field per form input. The store mapping
// (snake_case) is owned by the submission transformer.
type SubmissionRequest struct {
	// Step 1: profile
	FirstName                 string `json:"firstName" validate:"required,min=2"`
	LastName                  string `json:"lastName" validate:"required,min=2"`
	Email                     string `json:"email" validate:"required,email"`
	PhonePrefix               string `json:"phonePrefix" validate:"omitempty,startswith=+"`
	Phone                     string `json:"phone" validate:"required,min=8"`
	ProfessionalLicenseNumber string `json:"professionalLicenseNumber" validate:"required,min=3"`
	CompanyName               string `json:"companyName" validate:"required,min=2"`
	AccountType               string `json:"accountType" validate:"required,account_type"`

	// Step 2: vehicle
	VehicleCategory   string `json:"vehicleCategory" validate:"required,vehicle_category"`
	VehicleModel      string `json:"vehicleModel" validate:"required,min=2"`
	Immatriculation   string `json:"immatriculation" validate:"required,min=5"`
	PassengerCapacity Amount `json:"passengerCapacity" validate:"min=1"`
	LuggageCapacity   Amount `json:"luggageCapacity" validate:"min=0"`

	// Step 3: pricing
	PricingModel   string `json:"pricingModel" validate:"required,pricing_model"`
	Rate4h         Amount `json:"rate4h" validate:"min=0"`
	Rate8h         Amount `json:"rate8h" validate:"min=0"`
	IncludedKm     Amount `json:"includedKm" validate:"min=0"`
	ExtraKmPrice   Amount `json:"extraKmPrice" validate:"min=0"`
	DepositPercent Amount `json:"depositPercent" validate:"min=0,max=100"`
	PaymentTiming  string `json:"paymentTiming" validate:"required,payment_timing"`
	ServiceArea    string `json:"serviceArea" validate:"required,service_area"`

	// Step 4: logistics, all optional
	BookingChannels    []string `json:"bookingChannels" validate:"omitempty,dive,booking_channel"`
	LeadTimeHours      Amount   `json:"leadTimeHours" validate:"min=0"`
	CriticalInfo       []string `json:"criticalInfo" validate:"omitempty,dive,critical_info"`
	CriticalInfoOther  []string `json:"criticalInfoOther" validate:"omitempty,dive,min=1"`
	Languages          []string `json:"languages" validate:"omitempty,dive,language"`
	LanguagesOther     []string `json:"languagesOther" validate:"omitempty,dive,min=1"`
	PremiumServices    []string `json:"premiumServices" validate:"omitempty,dive,premium_service"`
	CancellationPolicy string   `json:"cancellationPolicy" validate:"omitempty,cancellation_policy"`
	PainPoints         string   `json:"painPoints" validate:"omitempty,max=2000"`
}

// StepCount is the number of wizard screens.
const StepCount = 4

// StepFields maps each wizard step to the struct fields it owns. Every
// field belongs to exactly one step.
var StepFields = [StepCount][]string{
	{"FirstName", "LastName", "Email", "PhonePrefix", "Phone",
		"ProfessionalLicenseNumber", "CompanyName", "AccountType"},
	{"VehicleCategory", "VehicleModel", "Immatriculation",
		"PassengerCapacity", "LuggageCapacity"},
	{"PricingModel", "Rate4h", "Rate8h", "IncludedKm", "ExtraKmPrice",
		"DepositPercent", "PaymentTiming", "ServiceArea"},
	{"BookingChannels", "LeadTimeHours", "CriticalInfo",
		"CriticalInfoOther", "Languages", "LanguagesOther",
		"PremiumServices", "CancellationPolicy", "PainPoints"},
}

// StepTitles names the wizard screens.
var StepTitles = [StepCount]string{
	"Votre profil",
	"Votre véhicule",
	"Vos tarifs",
	"Votre organisation",
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func schemaValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		optionTags := map[string][]string{
			"account_type":        constants.AccountTypes,
			"vehicle_category":    constants.VehicleCategories,
			"pricing_model":       constants.PricingModels,
			"payment_timing":      constants.PaymentTimings,
			"service_area":        constants.ServiceAreas,
			"booking_channel":     constants.BookingChannels,
			"critical_info":       constants.CriticalInfoItems,
			"language":            constants.Languages,
			"premium_service":     constants.PremiumServices,
			"cancellation_policy": constants.CancellationPolicies,
		}
		for tag, options := range optionTags {
			opts := options
			validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return constants.Contains(opts, fl.Field().String())
			})
		}

		// Amounts validate as plain numbers; unset behaves as zero.
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if a, ok := field.Interface().(Amount); ok {
				return a.Value
			}
			return nil
		}, Amount{})
	})
	return validate
}

// Validate checks the full record against the schema, including the
// "Autres" sentinel rules. A nil result means the record is valid.
func (r *SubmissionRequest) Validate() []types.FieldError {
	errs := toFieldErrors(schemaValidator().Struct(r))
	errs = append(errs, r.sentinelErrors()...)
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateStep checks only the fields belonging to the given step
// (1-based). The wizard must not advance past a step while this
// returns errors.
func (r *SubmissionRequest) ValidateStep(step int) []types.FieldError {
	if step < 1 || step > StepCount {
		return []types.FieldError{{Field: "step", Message: "Étape inconnue"}}
	}
	errs := toFieldErrors(schemaValidator().StructPartial(r, StepFields[step-1]...))
	if step == StepCount {
		errs = append(errs, r.sentinelErrors()...)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// sentinelErrors enforces that selecting the "Autres" checklist entry
// requires at least one entry in the dependent tag list.
func (r *SubmissionRequest) sentinelErrors() []types.FieldError {
	var errs []types.FieldError
	if constants.Contains(r.CriticalInfo, constants.OptionOther) && len(r.CriticalInfoOther) == 0 {
		errs = append(errs, types.FieldError{
			Field:   "criticalInfoOther",
			Message: "Précisez au moins un élément pour « Autres »",
		})
	}
	if constants.Contains(r.Languages, constants.OptionOther) && len(r.LanguagesOther) == 0 {
		errs = append(errs, types.FieldError{
			Field:   "languagesOther",
			Message: "Précisez au moins une langue pour « Autres »",
		})
	}
	return errs
}

func toFieldErrors(err error) []types.FieldError {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []types.FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]types.FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, types.FieldError{Field: e.Field(), Message: messageFor(e)})
	}
	return out
}

func messageFor(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "Ce champ est requis"
	case "email":
		return "Email invalide"
	case "min":
		if e.Kind().String() == "string" {
			return "Valeur trop courte (min. " + e.Param() + " caractères)"
		}
		return "Valeur minimale: " + e.Param()
	case "max":
		if e.Kind().String() == "string" {
			return "Valeur trop longue (max. " + e.Param() + " caractères)"
		}
		return "Valeur maximale: " + e.Param()
	case "startswith":
		return "Indicatif invalide"
	case "account_type", "vehicle_category", "pricing_model",
		"payment_timing", "service_area", "booking_channel",
		"critical_info", "language", "premium_service",
		"cancellation_policy":
		return "Sélectionnez une option valide"
	default:
		return "Valeur invalide"
	}
}

// MergeChecklist merges composed tag entries into the checklist base
// values, dropping empty strings and exact duplicates. When extra
// entries are present they replace the "Autres" sentinel that unlocked
// them; a checklist without a dependent tag list keeps "Autres" as a
// regular selection. Order is preserved: base values first, then extra
// entries.
func MergeChecklist(base, extra []string) []string {
	dropSentinel := len(extra) > 0
	seen := make(map[string]bool, len(base)+len(extra))
	merged := make([]string, 0, len(base)+len(extra))
	for _, lists := range [][]string{base, extra} {
		for _, v := range lists {
			if v == "" || seen[v] || (dropSentinel && v == constants.OptionOther) {
				continue
			}
			seen[v] = true
			merged = append(merged, v)
		}
	}
	return merged
}
