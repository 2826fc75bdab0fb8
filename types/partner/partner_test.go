package partner

import (
	"strings"
	"testing"

	"vtc-onboarding/types"
)

func validRequest() SubmissionRequest {
	return SubmissionRequest{
		FirstName:                 "Marie",
		LastName:                  "Dupont",
		Email:                     "marie@x.com",
		PhonePrefix:               "+33",
		Phone:                     "612345678",
		ProfessionalLicenseNumber: "VTC-75-123456",
		CompanyName:               "Dupont Transport",
		AccountType:               "Auto-entrepreneur",

		VehicleCategory:   "Berline",
		VehicleModel:      "Mercedes Classe E",
		Immatriculation:   "AB-123-CD",
		PassengerCapacity: NewAmount(3),
		LuggageCapacity:   NewAmount(2),

		PricingModel:  "Forfait Horaire",
		Rate4h:        NewAmount(220),
		PaymentTiming: "30% acompte",
		ServiceArea:   "Île-de-France",
	}
}

func hasFieldError(errs []types.FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestValidateAcceptsCompleteRecord(t *testing.T) {
	req := validRequest()
	if errs := req.Validate(); errs != nil {
		t.Fatalf("expected valid record, got errors: %+v", errs)
	}
}

func TestValidateReportsMissingEmail(t *testing.T) {
	req := validRequest()
	req.Email = ""
	errs := req.Validate()
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if !hasFieldError(errs, "email") {
		t.Fatalf("expected an error referencing email, got %+v", errs)
	}
}

func TestValidateRejectsUnknownEnumValue(t *testing.T) {
	req := validRequest()
	req.VehicleCategory = "Limousine"
	errs := req.Validate()
	if !hasFieldError(errs, "vehicleCategory") {
		t.Fatalf("expected an error referencing vehicleCategory, got %+v", errs)
	}
}

func TestValidateRejectsDepositOver100(t *testing.T) {
	req := validRequest()
	req.DepositPercent = NewAmount(150)
	errs := req.Validate()
	if !hasFieldError(errs, "depositPercent") {
		t.Fatalf("expected an error referencing depositPercent, got %+v", errs)
	}
}

func TestValidateStepChecksOnlyItsOwnFields(t *testing.T) {
	var req SubmissionRequest

	errs := req.ValidateStep(2)
	if errs == nil {
		t.Fatal("expected step 2 errors on an empty draft")
	}
	if !hasFieldError(errs, "vehicleCategory") {
		t.Fatalf("expected vehicleCategory error, got %+v", errs)
	}
	if hasFieldError(errs, "firstName") || hasFieldError(errs, "email") {
		t.Fatalf("step 2 must not report step 1 fields, got %+v", errs)
	}
}

func TestValidateStepPassesWhenStepComplete(t *testing.T) {
	req := validRequest()
	for step := 1; step <= StepCount; step++ {
		if errs := req.ValidateStep(step); errs != nil {
			t.Fatalf("step %d should pass, got %+v", step, errs)
		}
	}
}

func TestValidateStepRejectsUnknownStep(t *testing.T) {
	req := validRequest()
	if errs := req.ValidateStep(0); errs == nil {
		t.Fatal("expected error for step 0")
	}
	if errs := req.ValidateStep(StepCount + 1); errs == nil {
		t.Fatal("expected error for out-of-range step")
	}
}

func TestOtherSentinelRequiresTagEntries(t *testing.T) {
	req := validRequest()
	req.CriticalInfo = []string{"Vol retardé", "Autres"}

	errs := req.Validate()
	if !hasFieldError(errs, "criticalInfoOther") {
		t.Fatalf("expected criticalInfoOther error, got %+v", errs)
	}

	// The final step reports the same rule.
	errs = req.ValidateStep(StepCount)
	if !hasFieldError(errs, "criticalInfoOther") {
		t.Fatalf("expected criticalInfoOther error on final step, got %+v", errs)
	}

	req.CriticalInfoOther = []string{"Bagages volumineux"}
	if errs := req.Validate(); errs != nil {
		t.Fatalf("expected valid record once tags provided, got %+v", errs)
	}
}

func TestLanguageSentinelRequiresTagEntries(t *testing.T) {
	req := validRequest()
	req.Languages = []string{"Français", "Autres"}
	if errs := req.Validate(); !hasFieldError(errs, "languagesOther") {
		t.Fatalf("expected languagesOther error, got %+v", errs)
	}
}

func TestEveryFieldBelongsToExactlyOneStep(t *testing.T) {
	seen := map[string]int{}
	for step, fields := range StepFields {
		for _, f := range fields {
			if prev, dup := seen[f]; dup {
				t.Fatalf("field %s in steps %d and %d", f, prev+1, step+1)
			}
			seen[f] = step
		}
	}
}

func TestMergeChecklist(t *testing.T) {
	merged := MergeChecklist(
		[]string{"Français", "Autres", "Anglais"},
		[]string{"Espagnol", "Français", "", "Italien"},
	)
	want := []string{"Français", "Anglais", "Espagnol", "Italien"}
	if strings.Join(merged, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", merged, want)
	}
}

func TestMergeChecklistKeepsSentinelWithoutTagEntries(t *testing.T) {
	merged := MergeChecklist([]string{"Téléphone", "Autres"}, nil)
	want := []string{"Téléphone", "Autres"}
	if strings.Join(merged, "|") != strings.Join(want, "|") {
		t.Fatalf("got %v, want %v", merged, want)
	}
}

func TestErrorMessagesAreFrench(t *testing.T) {
	req := validRequest()
	req.Email = "not-an-email"
	errs := req.Validate()
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	for _, e := range errs {
		if e.Field == "email" && e.Message != "Email invalide" {
			t.Fatalf("unexpected message %q", e.Message)
		}
	}
}
