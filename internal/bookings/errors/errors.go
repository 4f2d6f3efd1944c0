package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")
)
