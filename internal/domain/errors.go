package domain

import "errors"

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrSeatsAlreadyBooked = errors.New("one or more selected seats are already booked")
	ErrDuplicateBooking   = errors.New("a booking already exists for this checkout session")
	ErrPaymentNotVerified = errors.New("payment not verified")
	ErrInvalidSeatLabel   = errors.New("seat label is not valid for the show's screen")
	ErrDuplicateShowSlot  = errors.New("a show already exists for this screen and time")
)
