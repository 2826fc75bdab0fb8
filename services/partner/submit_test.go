package partner

import (
	"context"
	"errors"
	"testing"

	partnerModel "vtc-onboarding/models/partner"
	partnerTypes "vtc-onboarding/types/partner"
)

func validSubmission() *partnerTypes.SubmissionRequest {
	return &partnerTypes.SubmissionRequest{
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
		PassengerCapacity: partnerTypes.NewAmount(3),
		LuggageCapacity:   partnerTypes.NewAmount(2),

		PricingModel:  "Forfait Horaire",
		Rate4h:        partnerTypes.NewAmount(220),
		PaymentTiming: "30% acompte",
		ServiceArea:   "Île-de-France",
	}
}

func TestSubmitInsertsNewApplication(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatal(err)
	}
	if !result.Created {
		t.Fatal("expected a created result")
	}
	if len(store.partners) != 1 {
		t.Fatalf("partner count = %d, want 1", len(store.partners))
	}
	if store.partners[0].Status != partnerModel.StatusPending {
		t.Fatalf("status = %s, want pending", store.partners[0].Status)
	}
	if len(store.events) != 1 || store.events[0].Status != partnerModel.StatusPending {
		t.Fatalf("expected one pending status event, got %+v", store.events)
	}
}

func TestSubmitUpdatesNonTerminalInPlace(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	first, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatal(err)
	}

	req := validSubmission()
	req.VehicleModel = "BMW Série 5"
	second, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	if second.Created {
		t.Fatal("resubmission must update, not insert")
	}
	if second.PartnerID != first.PartnerID {
		t.Fatalf("partner id changed: %s -> %s", first.PartnerID, second.PartnerID)
	}
	if len(store.partners) != 1 {
		t.Fatalf("partner count = %d, want 1", len(store.partners))
	}
	if store.partners[0].VehicleModel != "BMW Série 5" {
		t.Fatalf("vehicleModel = %q, want overwrite", store.partners[0].VehicleModel)
	}
}

func TestSubmitConflictsOnApprovedApplication(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatal(err)
	}
	store.partners[0].Status = partnerModel.StatusApproved
	before := store.partners[0]

	_, err = svc.Submit(context.Background(), validSubmission())
	if !errors.Is(err, ErrAlreadyApproved) {
		t.Fatalf("expected ErrAlreadyApproved, got %v", err)
	}
	if store.partners[0] != before {
		t.Fatal("approved record must not be mutated")
	}
	_ = result
}

func TestSubmitAllowsRejectedResubmission(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatal(err)
	}
	store.partners[0].Status = partnerModel.StatusRejected

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatal(err)
	}
	if result.Created {
		t.Fatal("rejected resubmission must update in place")
	}
	if store.partners[0].Status != partnerModel.StatusPending {
		t.Fatalf("status = %s, want pending again", store.partners[0].Status)
	}
}

func TestSubmitKeepsUploadedFileReferences(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store)

	if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatal(err)
	}
	store.partners[0].RibFile = "file-rib-123"

	if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
		t.Fatal(err)
	}
	if store.partners[0].RibFile != "file-rib-123" {
		t.Fatal("resubmission must not drop stored document references")
	}
}
