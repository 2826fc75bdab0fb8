package partner

import (
	"context"

	partnerModel "vtc-onboarding/models/partner"
	partnerTypes "vtc-onboarding/types/partner"
)

// Service owns the submission upsert and the admin review cascade.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// SubmitResult reports what the upsert did.
type SubmitResult struct {
	PartnerID string
	Created   bool
}

// Submit upserts a validated submission keyed by email, in one
// transaction. An approved application rejects the resubmission with
// ErrAlreadyApproved and nothing is written; a non-terminal one is
// overwritten in place; otherwise a new row is inserted. The unique
// index on email backstops two first submissions racing the lookup.
func (s *Service) Submit(ctx context.Context, req *partnerTypes.SubmissionRequest) (*SubmitResult, error) {
	record := ToRecord(req)

	var result SubmitResult
	err := s.store.Transaction(ctx, func(tx Store) error {
		existing, err := tx.FindPartnerByEmail(ctx, record.Email)
		if err != nil {
			return err
		}

		if existing != nil {
			if existing.Status.BlocksResubmission() {
				return ErrAlreadyApproved
			}
			record.ID = existing.ID
			record.CreatedAt = existing.CreatedAt
			record.AssuranceFile = existing.AssuranceFile
			record.CarteProFile = existing.CarteProFile
			record.RibFile = existing.RibFile
			record.CarteGriseFile = existing.CarteGriseFile
			if err := tx.UpdatePartner(ctx, record); err != nil {
				return err
			}
		} else {
			if err := tx.CreatePartner(ctx, record); err != nil {
				return err
			}
			result.Created = true
		}

		result.PartnerID = record.ID
		return tx.CreateStatusEvent(ctx, &partnerModel.StatusEvent{
			PartnerID: record.ID,
			Status:    record.Status,
			CreatedBy: "public-form",
		})
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
