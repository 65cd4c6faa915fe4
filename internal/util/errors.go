package util

import "errors"

var (
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")

	// ErrModelCall covers upstream transport failures (network, auth, quota)
	// and empty responses from the generative model.
	ErrModelCall = errors.New("model call failed")

	// ErrModelOutput covers responses that came back but could not be parsed
	// or did not match the required shape. Retried on the generation path.
	ErrModelOutput = errors.New("model returned malformed output")

	ErrAnswersMismatch = errors.New("answers length must match questions length")
)
