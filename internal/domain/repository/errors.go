// Package repository defines the persistence contracts of the domain layer.
package repository

import "chow/internal/errors"

// Sentinel errors returned by repository implementations. Use cases match on
// these and translate them into domain errors for the caller.
var (
	// ErrUserNotFound is returned when a user record does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrRestaurantNotFound is returned when a restaurant record does not exist.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	// ErrFoodItemNotFound is returned when a food item record does not exist.
	ErrFoodItemNotFound = errors.New("food item not found")

	// ErrInsufficientSupply is returned when a conditional stock decrement
	// matches no row because the remaining supply is too small.
	ErrInsufficientSupply = errors.New("insufficient food item supply")

	// ErrOrderNotFound is returned when an order record does not exist.
	ErrOrderNotFound = errors.New("order not found")

	// ErrOrderStatusStale is returned when a conditional status update matches
	// no row because the order moved to another status concurrently.
	ErrOrderStatusStale = errors.New("order status changed concurrently")

	// ErrWalletNotFound is returned when a wallet record does not exist.
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrInsufficientBalance is returned when a conditional debit matches no
	// row because the wallet balance is too small.
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
)
