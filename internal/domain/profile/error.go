package profile

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrFileRead     = errors.New("file read failed")
)
