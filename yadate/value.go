package yadate

import (
	"fmt"
	"net/http"
	"time"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
)

// Value is anything Read accepts as a date: a Date, a time.Time, or an ISO string.
type Value interface {
	Date | time.Time | string
}

// Read normalizes a date-like input into a Date.
//
// Example usage:
//
//	date, err := yadate.Read("2020-04-01")
//	date, err = yadate.Read(time.Now())
func Read[T Value](value T) (Date, yaerrors.Error) {
	switch v := any(value).(type) {
	case Date:
		return v, nil
	case time.Time:
		return FromTime(v), nil
	case string:
		return Parse(v)
	default:
		return Date{}, yaerrors.FromError(
			http.StatusInternalServerError,
			ErrUnsupportedValue,
			fmt.Sprintf("read date: got %T", value),
		)
	}
}
