// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPendingAdminApproval is the initial state of every order.
	StatusPendingAdminApproval OrderStatus = "PENDING_ADMIN_APPROVAL"
	// StatusRejectedByAdmin is a terminal state entered when an admin rejects the order.
	StatusRejectedByAdmin OrderStatus = "REJECTED_BY_ADMIN"
	// StatusPendingVendorApproval means the order awaits the restaurant's decision.
	StatusPendingVendorApproval OrderStatus = "PENDING_VENDOR_APPROVAL"
	// StatusRejectedByVendor is a terminal state entered when the seller rejects the order.
	StatusRejectedByVendor OrderStatus = "REJECTED_BY_VENDOR"
	// StatusPendingPayment means the seller accepted an unpaid order and payment is due.
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	// StatusPreparing means the restaurant is preparing the order.
	StatusPreparing OrderStatus = "PREPARING"
	// StatusReadyForPickup means the order can be claimed by a courier.
	StatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	// StatusOnTheWay means a courier has picked the order up.
	StatusOnTheWay OrderStatus = "ON_THE_WAY"
	// StatusCompleted is the terminal success state, reached on delivery.
	StatusCompleted OrderStatus = "COMPLETED"
	// StatusCancelled is a terminal state reachable from any non-terminal state.
	StatusCancelled OrderStatus = "CANCELLED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPendingAdminApproval, StatusRejectedByAdmin,
		StatusPendingVendorApproval, StatusRejectedByVendor,
		StatusPendingPayment, StatusPreparing, StatusReadyForPickup,
		StatusOnTheWay, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave this state.
func (s OrderStatus) IsTerminal() bool {
	switch s {
	case StatusRejectedByAdmin, StatusRejectedByVendor, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}
