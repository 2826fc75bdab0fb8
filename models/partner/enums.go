package partner

// Status is the lifecycle state of a partner application.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Helper methods for Status
func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal returns true once an admin decision has been recorded.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// BlocksResubmission returns true if a new submission for the same
// email must be rejected with a conflict. Rejected applicants may
// resubmit; approved ones may not.
func (s Status) BlocksResubmission() bool {
	return s == StatusApproved
}

// CanBeReviewed returns true if an admin decision can still be applied.
func (s Status) CanBeReviewed() bool {
	return s == StatusDraft || s == StatusPending
}

// GetAllStatuses returns all valid application statuses
func GetAllStatuses() []Status {
	return []Status{
		StatusDraft,
		StatusPending,
		StatusApproved,
		StatusRejected,
	}
}
