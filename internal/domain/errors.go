package domain

import "errors"

// Sentinel errors returned by the service layer. HTTP handlers map them
// to status codes.
var (
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrAlertNotFound   = errors.New("alert not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrInvalidStatus   = errors.New("invalid pipeline status")
	ErrInvalidWindow   = errors.New("invalid analytics window")
	ErrInvalidInput    = errors.New("invalid input")
	ErrAlreadyResolved = errors.New("alert already resolved")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)
