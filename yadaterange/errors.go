package yadaterange

import "errors"

var (
	ErrInvalidComponent = errors.New("invalid date range component")
	ErrMissingBound     = errors.New("no lower or upper bound")
	ErrOpenRange        = errors.New("open range")
)
