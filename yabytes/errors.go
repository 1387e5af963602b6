package yabytes

import "errors"

var (
	ErrInvalidFormat = errors.New("invalid format")
	ErrUnknownUnit   = errors.New("unknown unit")
	ErrOverflow      = errors.New("byte count overflows int64")
)
