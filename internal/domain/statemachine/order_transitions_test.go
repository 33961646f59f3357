package statemachine

import (
	"testing"

	"chow/internal/domain/entity"
	domainerrors "chow/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_HappyPath(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		target  entity.OrderStatus
		role    entity.Role
	}{
		{"admin approves new order", entity.StatusPendingAdminApproval, entity.StatusPendingVendorApproval, entity.RoleAdmin},
		{"admin rejects new order", entity.StatusPendingAdminApproval, entity.StatusRejectedByAdmin, entity.RoleAdmin},
		{"seller accepts straight to preparing", entity.StatusPendingVendorApproval, entity.StatusPreparing, entity.RoleSeller},
		{"seller accepts pending payment", entity.StatusPendingVendorApproval, entity.StatusPendingPayment, entity.RoleSeller},
		{"seller rejects order", entity.StatusPendingVendorApproval, entity.StatusRejectedByVendor, entity.RoleSeller},
		{"seller marks ready", entity.StatusPreparing, entity.StatusReadyForPickup, entity.RoleSeller},
		{"courier claims ready order", entity.StatusReadyForPickup, entity.StatusOnTheWay, entity.RoleCourier},
		{"courier completes delivery", entity.StatusOnTheWay, entity.StatusCompleted, entity.RoleCourier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Validate(tt.current, tt.target, tt.role))
		})
	}
}

func TestValidate_WrongRole(t *testing.T) {
	tests := []struct {
		name    string
		current entity.OrderStatus
		target  entity.OrderStatus
		role    entity.Role
	}{
		{"seller cannot approve for admin", entity.StatusPendingAdminApproval, entity.StatusPendingVendorApproval, entity.RoleSeller},
		{"customer cannot mark preparing", entity.StatusPendingVendorApproval, entity.StatusPreparing, entity.RoleCustomer},
		{"admin cannot claim order", entity.StatusReadyForPickup, entity.StatusOnTheWay, entity.RoleAdmin},
		{"seller cannot complete delivery", entity.StatusOnTheWay, entity.StatusCompleted, entity.RoleSeller},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.current, tt.target, tt.role)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
		})
	}
}

func TestValidate_SkippingStatesRejected(t *testing.T) {
	// A seller with an admin-pending order cannot jump over the admin review,
	// even to a state sellers normally own.
	err := Validate(entity.StatusPendingVendorApproval, entity.StatusReadyForPickup, entity.RoleSeller)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ILLEGAL_TRANSITION", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "valid targets")
}

func TestValidate_TerminalStatesAreFinal(t *testing.T) {
	terminal := []entity.OrderStatus{
		entity.StatusRejectedByAdmin,
		entity.StatusRejectedByVendor,
		entity.StatusCompleted,
		entity.StatusCancelled,
	}

	for _, current := range terminal {
		t.Run(current.String(), func(t *testing.T) {
			err := Validate(current, entity.StatusPreparing, entity.RoleAdmin)
			require.Error(t, err)

			// Not even cancellation escapes a terminal state.
			err = Validate(current, entity.StatusCancelled, entity.RoleCustomer)
			require.Error(t, err)
		})
	}
}

func TestValidate_Cancellation(t *testing.T) {
	nonTerminal := []entity.OrderStatus{
		entity.StatusPendingAdminApproval,
		entity.StatusPendingVendorApproval,
		entity.StatusPendingPayment,
		entity.StatusPreparing,
		entity.StatusReadyForPickup,
		entity.StatusOnTheWay,
	}

	for _, current := range nonTerminal {
		t.Run(current.String(), func(t *testing.T) {
			assert.NoError(t, Validate(current, entity.StatusCancelled, entity.RoleCustomer))
			assert.NoError(t, Validate(current, entity.StatusCancelled, entity.RoleSeller))

			err := Validate(current, entity.StatusCancelled, entity.RoleCourier)
			require.Error(t, err)
			err = Validate(current, entity.StatusCancelled, entity.RoleAdmin)
			require.Error(t, err)
		})
	}
}

func TestValidatePayment(t *testing.T) {
	assert.NoError(t, ValidatePayment(entity.StatusPendingPayment))

	for _, current := range []entity.OrderStatus{
		entity.StatusPendingAdminApproval,
		entity.StatusPendingVendorApproval,
		entity.StatusPreparing,
		entity.StatusCompleted,
		entity.StatusCancelled,
	} {
		err := ValidatePayment(current)
		require.Error(t, err, current)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "ORDER_NOT_PAYABLE", appErr.ErrorCode())
	}
}

func TestAllowedTargets(t *testing.T) {
	targets := AllowedTargets(entity.StatusPendingVendorApproval, entity.RoleSeller)
	assert.ElementsMatch(t, []entity.OrderStatus{
		entity.StatusPreparing,
		entity.StatusPendingPayment,
		entity.StatusRejectedByVendor,
	}, targets)

	assert.Empty(t, AllowedTargets(entity.StatusCompleted, entity.RoleAdmin))
}
