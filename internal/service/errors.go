package service

import "errors"

// Domain errors. Handlers map these to HTTP statuses and localized
// messages; services never let raw repository or driver errors cross the
// API boundary untyped.
var (
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when a status update is not allowed
	// by the entity's transition table.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrReservationConflict is returned when an active reservation already
	// exists for the table at that time.
	ErrReservationConflict = errors.New("reservation slot already taken")

	// ErrTableOccupied is returned when creating an order for a table that
	// already has an open one.
	ErrTableOccupied = errors.New("table already has an open order")

	// ErrEmptyOrder is returned when an order is created without items.
	ErrEmptyOrder = errors.New("order has no items")

	// ErrTotalMismatch is returned when the submitted total does not equal
	// the recomputed sum of line totals.
	ErrTotalMismatch = errors.New("order total does not match items")

	// ErrTableOutOfRange is returned when the table number is outside 1..N.
	ErrTableOutOfRange = errors.New("table number out of range")

	// ErrInvalidRole is returned when a role assignment names an unknown
	// role.
	ErrInvalidRole = errors.New("unknown role")

	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTooManyAttempts is returned when sign-in is throttled. It is kept
	// distinct from ErrInvalidCredentials so the caller can show the
	// dedicated message.
	ErrTooManyAttempts = errors.New("too many sign-in attempts")

	// ErrSignupDisabled is returned by the demo identity provider.
	ErrSignupDisabled = errors.New("sign-up is disabled")

	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrDuplicateAccount is returned when a sign-up reuses an existing
	// username or email.
	ErrDuplicateAccount = errors.New("account already exists")
)
