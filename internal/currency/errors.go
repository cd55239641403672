package currency

import "errors"

var (
	// ErrInvalidArgument is returned for NaN, infinite and negative values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOutOfRange is returned for values above MaxValue.
	ErrOutOfRange = errors.New("value out of range")
)
