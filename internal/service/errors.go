package service

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNotEnoughPermissions = errors.New("not enough permissions")
)

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ValidationError is returned for malformed or semantically invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError is returned for availability collisions, illegal lifecycle
// transitions and deletes blocked by active references.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

var (
	errStartDateNotBeforeEndDate = &ValidationError{Message: "start date has to be before end date"}

	errReservationInThePast = &ValidationError{Message: "reservation cannot be created in the past"}
	errRentalInThePast      = &ValidationError{Message: "rental cannot be created in the past"}

	errReservationCollision = &ConflictError{Message: "there is already a reservation for this car in given time range"}
	errRentalCollision      = &ConflictError{Message: "there is already a rental for this car in given time range or this car is unavailable"}

	errReservationNotCollectable = &ConflictError{Message: "reservation is no longer collectable"}

	errUpdatingCancelledReservation = &ConflictError{Message: "you cannot update cancelled reservation"}
	errUpdatingCollectedReservation = &ConflictError{Message: "you cannot update collected reservation"}
	errCollectViaUpdate             = &ConflictError{Message: "reservation can only be collected by creating a rental"}
	errUpdatingCompletedRental      = &ConflictError{Message: "you cannot update completed rental"}

	errRentalReservationMismatch = &ValidationError{Message: "rental's car_id or customer_id is different than on reservation's object"}
)
