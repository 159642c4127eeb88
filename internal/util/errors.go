package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user account disabled")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidDate        = errors.New("invalid activity date")
	ErrInvalidValue       = errors.New("value must be between 1 and 4")
	ErrInvalidDuration    = errors.New("duration must not be negative")
)
