// Package entity contains the core business objects of the project.
package entity

// Approval represents the admin approval state applied to sellers,
// couriers, and restaurants before they become visible to customers.
type Approval string

const (
	// ApprovalPending indicates the record awaits an admin decision.
	ApprovalPending Approval = "pending"
	// ApprovalConfirmed indicates the record has been approved.
	ApprovalConfirmed Approval = "confirmed"
	// ApprovalRejected indicates the record has been rejected.
	ApprovalRejected Approval = "rejected"
)

// String returns the string representation of the Approval.
func (a Approval) String() string {
	return string(a)
}

// IsValid checks if the Approval is a valid value.
func (a Approval) IsValid() bool {
	switch a {
	case ApprovalPending, ApprovalConfirmed, ApprovalRejected:
		return true
	default:
		return false
	}
}

// IsConfirmed reports whether the record passed admin review.
func (a Approval) IsConfirmed() bool {
	return a == ApprovalConfirmed
}
