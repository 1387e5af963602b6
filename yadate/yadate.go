// Package yadate provides Date, a calendar date without time of day or zone.
//
// Dates are comparable values: == and map keys work. The zero Date is not a
// valid calendar day and is used to mean "no date", the same way a zero
// time.Time is.
//
// Example usage:
//
//	date, err := yadate.Parse("2020-02-27")
//	if err != nil {
//		// Handle error
//	}
//
//	fmt.Println(date.AddDays(3))     // 2020-03-01
//	fmt.Println(date.EndOfMonth())   // 2020-02-29
package yadate

import (
	"cmp"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
	"github.com/jinzhu/now"
)

// Date is a calendar date.
type Date struct {
	year  int
	month time.Month
	day   int
}

// New returns the date for year, month and day, normalized the way time.Date
// normalizes values outside their usual ranges (e.g. October 32 is November 1).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar date of t in t's location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()

	return Date{year: year, month: month, day: day}
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

// Parse reads a strict ISO-8601 calendar date, YYYY-MM-DD.
//
// Example usage:
//
//	date, err := yadate.Parse("2021-08-01")
func Parse(value string) (Date, yaerrors.Error) {
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return Date{}, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidDate,
			fmt.Sprintf("parse date %q: %v", value, err),
		)
	}

	return FromTime(parsed), nil
}

// MustParse is Parse that panics on error. Intended for literals.
func MustParse(value string) Date {
	date, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return date
}

// ParseYearMonth reads the YEAR-MONTH shorthand and returns the first day of that month.
// The boolean result reports whether value has the two-field shape at all, so
// callers can fall back to Parse for anything else.
//
// Example usage:
//
//	first, ok, err := yadate.ParseYearMonth("2020-02") // 2020-02-01, true, nil
//	_, ok, err = yadate.ParseYearMonth("2020-02-03")  // ok == false
func ParseYearMonth(value string) (Date, bool, yaerrors.Error) {
	yearStr, monthStr, found := strings.Cut(value, "-")
	if !found || strings.Contains(monthStr, "-") {
		return Date{}, false, nil
	}

	year, yearErr := strconv.Atoi(yearStr)
	month, monthErr := strconv.Atoi(monthStr)

	if yearErr != nil || monthErr != nil || year < MinYear || year > MaxYear ||
		month < int(time.January) || month > int(time.December) {
		return Date{}, true, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidYearMonth,
			fmt.Sprintf("parse year-month %q", value),
		)
	}

	return Date{year: year, month: time.Month(month), day: 1}, true, nil
}

// Year returns the year of d.
func (d Date) Year() int {
	return d.year
}

// Month returns the month of d.
func (d Date) Month() time.Month {
	return d.month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	return d.day
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns d moved by n days; n may be negative.
func (d Date) AddDays(n int) Date {
	return New(d.year, d.month, d.day+n)
}

// BeginningOfMonth returns the first day of d's month.
func (d Date) BeginningOfMonth() Date {
	return FromTime(now.With(d.Time()).BeginningOfMonth())
}

// EndOfMonth returns the last day of d's month, i.e. the day before the first
// of the next month. December rolls over into January of the following year.
func (d Date) EndOfMonth() Date {
	return FromTime(now.With(d.Time()).EndOfMonth())
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or after other.
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmp.Compare(d.year, other.year)
	case d.month != other.month:
		return cmp.Compare(d.month, other.month)
	default:
		return cmp.Compare(d.day, other.day)
	}
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Compare(other) < 0
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Compare(other) > 0
}

// Equal reports whether d and other are the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Compare is Date.Compare as a plain function, handy for slices.SortFunc.
func Compare(a, b Date) int {
	return a.Compare(b)
}
