package service

import "errors"

// Sentinel errors the API layer maps onto HTTP statuses and error codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotApproved        = errors.New("account not approved")
	ErrSessionInvalid     = errors.New("session invalid or expired")
)
