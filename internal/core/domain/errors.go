package domain

import "errors"

// Common domain errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("duplicate entry")
)

// Auth errors. Unknown email and wrong password deliberately share one
// sentinel so callers cannot tell the cases apart.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnknownSubject     = errors.New("token subject does not resolve to a user")
)

// Record errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrVesselNotFound      = errors.New("vessel not found")
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrMaintenanceNotFound = errors.New("maintenance record not found")
)
