package service

import "errors"

var (
	// ErrValidation marks missing or malformed input; handlers answer 400.
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken is returned when registering a duplicate username.
	ErrUsernameTaken = errors.New("auth: username already registered")
	// ErrInvalidCredentials represents login failure.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
)
