package yadaterange

import (
	"github.com/YaCodeDev/GoYaCodeDevTypes/yadate"
)

// Subrange is one interval of a DateRange. A zero Lower means the interval
// is unbounded below, a zero Upper that it is unbounded above. Bounds are
// inclusive and lower <= upper is not enforced: a reversed Subrange simply
// contains no date.
type Subrange struct {
	Lower yadate.Date
	Upper yadate.Date
}

// HasLower reports whether s is bounded below.
func (s Subrange) HasLower() bool {
	return !s.Lower.IsZero()
}

// HasUpper reports whether s is bounded above.
func (s Subrange) HasUpper() bool {
	return !s.Upper.IsZero()
}

// Contains reports whether date falls inside s.
func (s Subrange) Contains(date yadate.Date) bool {
	if s.HasLower() && date.Before(s.Lower) {
		return false
	}

	if s.HasUpper() && date.After(s.Upper) {
		return false
	}

	return s.HasLower() || s.HasUpper()
}

// String renders s as "lower..upper", "day", "..upper" or "lower..".
func (s Subrange) String() string {
	switch {
	case !s.HasLower():
		return BoundSeparator + s.Upper.String()
	case !s.HasUpper():
		return s.Lower.String() + BoundSeparator
	case s.Lower == s.Upper:
		return s.Lower.String()
	default:
		return s.Lower.String() + BoundSeparator + s.Upper.String()
	}
}
