package valueparser

import (
	"errors"
)

var (
	ErrUnsupportedType = errors.New("unsupported type")
	ErrUnparsableValue = errors.New("unparsable value")
)
