// Package statemachine holds the authoritative order status transition rules.
// It is pure domain logic: given the current status, the requested target and
// the acting role, it decides legality. Ownership checks (is this seller the
// order's seller, is this courier the assigned courier) belong to the order
// engine, which knows the order's relations.
package statemachine

import (
	"fmt"
	"strings"

	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"
)

// Transition defines a valid state change and who can perform it.
type Transition struct {
	From  entity.OrderStatus
	To    entity.OrderStatus
	Actor entity.Role
}

// validTransitions is the authoritative state machine definition.
// Cancellation is handled separately: the order's customer or the
// restaurant's seller may cancel from any non-terminal state.
var validTransitions = []Transition{
	// Admin reviews every new order first.
	{From: entity.StatusPendingAdminApproval, To: entity.StatusPendingVendorApproval, Actor: entity.RoleAdmin},
	{From: entity.StatusPendingAdminApproval, To: entity.StatusRejectedByAdmin, Actor: entity.RoleAdmin},
	// The seller accepts (straight to PREPARING, or via PENDING_PAYMENT
	// when payment is still outstanding) or rejects.
	{From: entity.StatusPendingVendorApproval, To: entity.StatusPreparing, Actor: entity.RoleSeller},
	{From: entity.StatusPendingVendorApproval, To: entity.StatusPendingPayment, Actor: entity.RoleSeller},
	{From: entity.StatusPendingVendorApproval, To: entity.StatusRejectedByVendor, Actor: entity.RoleSeller},
	// The seller marks the order ready for pickup.
	{From: entity.StatusPreparing, To: entity.StatusReadyForPickup, Actor: entity.RoleSeller},
	// A courier claims and delivers the order.
	{From: entity.StatusReadyForPickup, To: entity.StatusOnTheWay, Actor: entity.RoleCourier},
	{From: entity.StatusOnTheWay, To: entity.StatusCompleted, Actor: entity.RoleCourier},
}

// transitionKey is used to look up valid transitions quickly.
type transitionKey struct {
	From  entity.OrderStatus
	To    entity.OrderStatus
	Actor entity.Role
}

var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}

	return m
}()

// Validate decides whether the acting role may move an order from its
// current status to the target. Any transition out of a terminal status and
// any (from, to, role) triple missing from the table is rejected with a
// Conflict error naming the attempted and current states.
func Validate(current, target entity.OrderStatus, role entity.Role) error {
	if current.IsTerminal() {
		return domainerrors.ErrIllegalTransition.WithDetails(
			fmt.Sprintf("order is already %s; no further transitions allowed", current),
		)
	}

	// Cancellation short-circuit: customer or seller, any non-terminal state.
	if target == entity.StatusCancelled {
		if role == entity.RoleCustomer || role == entity.RoleSeller {
			return nil
		}

		return domainerrors.ErrIllegalTransition.WithDetails(
			fmt.Sprintf("role %s may not cancel an order", role),
		)
	}

	if transitionMap[transitionKey{From: current, To: target, Actor: role}] {
		return nil
	}

	return domainerrors.ErrIllegalTransition.WithDetails(
		fmt.Sprintf("cannot move order from %s to %s as %s; valid targets: %s",
			current, target, role, describeValidFrom(current, role)),
	)
}

// ValidatePayment decides whether an order can accept a payment. Payment is
// not an actor-driven transition; it is triggered by the wallet ledger and
// moves the order from PENDING_PAYMENT to PREPARING.
func ValidatePayment(current entity.OrderStatus) error {
	if current == entity.StatusPendingPayment {
		return nil
	}

	return domainerrors.ErrOrderNotPayable.WithDetails(
		fmt.Sprintf("order is %s, payment requires %s", current, entity.StatusPendingPayment),
	)
}

// AllowedTargets returns the targets the given role may move this status to,
// excluding cancellation.
func AllowedTargets(current entity.OrderStatus, role entity.Role) []entity.OrderStatus {
	var targets []entity.OrderStatus
	for _, t := range validTransitions {
		if t.From == current && t.Actor == role {
			targets = append(targets, t.To)
		}
	}

	return targets
}

func describeValidFrom(current entity.OrderStatus, role entity.Role) string {
	targets := AllowedTargets(current, role)
	if len(targets) == 0 {
		return "none"
	}

	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.String())
	}

	return strings.Join(names, ", ")
}
