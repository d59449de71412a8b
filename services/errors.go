package services

import "errors"

var (
	ErrTableNotFound       = errors.New("table not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrTimeConflict        = errors.New("time slot is already booked")
	ErrPastReservationTime = errors.New("reservation time must be in the future")
)
