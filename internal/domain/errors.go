package domain

import "errors"

var (
	ErrDuplicateTrainID  = errors.New("train with this number already exists")
	ErrTrainNotFound     = errors.New("train not found")
	ErrPassengerNotFound = errors.New("passenger not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInsufficientSeats = errors.New("insufficient seats available")
	ErrInvalidDate       = errors.New("invalid travel date")
	ErrInvalidNumber     = errors.New("invalid number format")
	ErrInvalidTrainNo    = errors.New("invalid train number")
	ErrTrainNameRequired = errors.New("train name required")
	ErrInvalidSeatCount  = errors.New("invalid seat count")
	ErrInvalidFare       = errors.New("invalid fare per seat")
)
