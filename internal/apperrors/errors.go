package apperrors

import "errors"

var (
	ErrDuplicateProblem = errors.New("problem already exists")
	ErrCapacityExceeded = errors.New("problem catalog is full")
)

var (
	ErrUserCancelled = errors.New("cancelled by user")
	ErrInvalidInput  = errors.New("invalid input")
	ErrInputClosed   = errors.New("input closed")
)
