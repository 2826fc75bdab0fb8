// Package wizard drives the multi-step onboarding form: it owns the
// in-memory draft record, walks the fixed step sequence, gates each
// advance on that step's validation, and submits the full record from
// the final step.
package wizard

import (
	"context"

	"vtc-onboarding/types"
	partnertypes "vtc-onboarding/types/partner"
)

// Submitter sends a completed draft to the submission endpoint or the
// workflow webhook.
type Submitter interface {
	Submit(ctx context.Context, req *partnertypes.SubmissionRequest) error
}

// StepError is returned when a step (or the final record) fails
// validation. The wizard does not advance while it is non-nil.
type StepError struct {
	Fields []types.FieldError
}

func (e *StepError) Error() string {
	return "Veuillez remplir correctement tous les champs obligatoires."
}

// Wizard holds one draft record and the current position in the step
// sequence. It is single-user, in-memory state: nothing is persisted
// until Submit succeeds.
type Wizard struct {
	draft     partnertypes.SubmissionRequest
	step      int
	submitter Submitter
}

func New(submitter Submitter) *Wizard {
	return &Wizard{
		draft:     partnertypes.SubmissionRequest{PhonePrefix: "+33"},
		step:      1,
		submitter: submitter,
	}
}

// Draft exposes the mutable draft record for the form inputs.
func (w *Wizard) Draft() *partnertypes.SubmissionRequest {
	return &w.draft
}

// Step returns the current step, 1-based.
func (w *Wizard) Step() int {
	return w.step
}

// Title returns the current screen title.
func (w *Wizard) Title() string {
	return partnertypes.StepTitles[w.step-1]
}

// OnFinalStep reports whether the next action is Submit rather than
// Next.
func (w *Wizard) OnFinalStep() bool {
	return w.step == partnertypes.StepCount
}

// Next validates the current step's fields and advances past it. On
// validation failure the position is unchanged and a StepError carries
// the per-field messages.
func (w *Wizard) Next() error {
	if errs := w.draft.ValidateStep(w.step); errs != nil {
		return &StepError{Fields: errs}
	}
	if w.step < partnertypes.StepCount {
		w.step++
	}
	return nil
}

// Back returns to the previous step. Going back never validates.
func (w *Wizard) Back() {
	if w.step > 1 {
		w.step--
	}
}

// Submit validates the full record and hands it to the submitter.
// Composed tag lists are merged into their checklists by the
// server-side transformer; the wizard sends them as entered.
func (w *Wizard) Submit(ctx context.Context) error {
	if errs := w.draft.Validate(); errs != nil {
		return &StepError{Fields: errs}
	}
	return w.submitter.Submit(ctx, &w.draft)
}
