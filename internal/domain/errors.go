package domain

import "errors"

var (
	ErrPlotNotFound    = errors.New("plot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	// ErrInvalidCapacity signals bad registration data from the land registry.
	ErrInvalidCapacity = errors.New("plot capacity must not be negative")
	// ErrSlotUnavailable is recoverable: re-query availability and pick
	// another plot.
	ErrSlotUnavailable = errors.New("no free slot for this vehicle class")
	ErrPlotRetired     = errors.New("plot is retired")
)

var (
	ErrInvalidDuration = errors.New("hourly plan must be between 1 and 6 hours")
	// ErrInvalidTransition signals state-machine misuse by the caller.
	ErrInvalidTransition = errors.New("invalid booking state transition")
	// ErrReservationExpired: payment arrived after the grace period; the
	// reservation was cancelled and the slot released.
	ErrReservationExpired = errors.New("reservation grace period elapsed")
	ErrTicketNotAvailable = errors.New("ticket is only available for active or expired bookings")
)

// ErrInvariantViolation means internal consistency is broken (e.g. a release
// without a matching reserve). It indicates a defect, never user error, and
// must be surfaced rather than retried.
var ErrInvariantViolation = errors.New("inventory invariant violated")

var (
	ErrValidation         = errors.New("validation error")
	ErrVerificationFailed = errors.New("land ownership verification failed")
)
