package yadate

import "errors"

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidYearMonth = errors.New("invalid year-month")
	ErrUnsupportedValue = errors.New("unsupported date value")
)
