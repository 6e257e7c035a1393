package errors

import "errors"

var (
	ErrAlreadyBooked = errors.New("class is already booked")

	ErrBookingInFlight = errors.New("another booking is still in flight")

	ErrNotBookable = errors.New("class cannot be booked")

	ErrUnknownClass = errors.New("class is not on the current schedule")

	ErrNotBooked = errors.New("class is not in the booked set")

	ErrPastBooking = errors.New("booking already started")
)
