package account

import "errors"

var (
	ErrFieldsRequired = errors.New("all fields are required")
	ErrSecretMismatch = errors.New("secrets do not match")
	ErrAlreadyExists  = errors.New("account already exists")
	ErrInvalidAuth    = errors.New("invalid credentials")
	ErrNotFound       = errors.New("account not found")
)
