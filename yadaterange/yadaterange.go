// Package yadaterange implements DateRange, a union of inclusive calendar date
// intervals parsed from a compact text expression such as
//
//	2020-04-01,2020-05-01..2020-05-20,2020-06..
//
// A DateRange answers membership queries, reports its bounding envelope,
// orders itself against single dates and lazily enumerates its days, either
// all at once or grouped by month. It is immutable once parsed and safe for
// concurrent use.
//
// Example usage:
//
//	dateRange := yadaterange.MustParse("2020-01..2020-03")
//
//	dateRange.Contains(yadate.MustParse("2020-02-29")) // true
//
//	days, err := dateRange.All()
//	if err != nil {
//		// Handle error
//	}
//
//	for day := range days {
//		fmt.Println(day)
//	}
package yadaterange

import (
	"fmt"
	"iter"
	"net/http"
	"slices"
	"strings"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yadate"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
	"github.com/samber/lo"
)

// DateRange is an ordered list of Subranges read as their union. The order
// only matters for String.
type DateRange struct {
	subranges []Subrange
}

// New builds a DateRange straight from subranges, which are copied.
func New(subranges ...Subrange) DateRange {
	return DateRange{subranges: slices.Clone(subranges)}
}

// Subranges returns a copy of the subranges in input order.
func (r DateRange) Subranges() []Subrange {
	return slices.Clone(r.subranges)
}

// Contains reports whether date falls inside any subrange.
func (r DateRange) Contains(date yadate.Date) bool {
	return lo.ContainsBy(r.subranges, func(s Subrange) bool {
		return s.Contains(date)
	})
}

// ContainsValue is Contains for any date-like input.
//
// Example usage:
//
//	ok, err := yadaterange.ContainsValue(dateRange, "2020-05-10")
func ContainsValue[T yadate.Value](r DateRange, value T) (bool, yaerrors.Error) {
	date, err := yadate.Read(value)
	if err != nil {
		return false, err.Wrap("date range contains")
	}

	return r.Contains(date), nil
}

// Min returns the earliest lower bound. ok is false when some subrange is
// unbounded below or the range is empty.
func (r DateRange) Min() (yadate.Date, bool) {
	if len(r.subranges) == 0 || lo.SomeBy(r.subranges, func(s Subrange) bool { return !s.HasLower() }) {
		return yadate.Date{}, false
	}

	lowers := lo.Map(r.subranges, func(s Subrange, _ int) yadate.Date { return s.Lower })

	return lo.MinBy(lowers, yadate.Date.Before), true
}

// Max returns the latest upper bound. ok is false when some subrange is
// unbounded above or the range is empty.
func (r DateRange) Max() (yadate.Date, bool) {
	if len(r.subranges) == 0 || lo.SomeBy(r.subranges, func(s Subrange) bool { return !s.HasUpper() }) {
		return yadate.Date{}, false
	}

	uppers := lo.Map(r.subranges, func(s Subrange, _ int) yadate.Date { return s.Upper })

	return lo.MaxBy(uppers, yadate.Date.After), true
}

// Compare orders the range against date using the [Min, Max] envelope, not
// membership. It returns -1 when the whole range precedes date, +1 when the
// whole range follows date, and 0 otherwise, including when date falls in a
// gap between subranges.
func (r DateRange) Compare(date yadate.Date) int {
	if upper, ok := r.Max(); ok && upper.Before(date) {
		return -1
	}

	if lower, ok := r.Min(); ok && lower.After(date) {
		return 1
	}

	return 0
}

// Before reports whether the whole range precedes date, i.e. date > r.
// date <= r is therefore !r.Before(date).
func (r DateRange) Before(date yadate.Date) bool {
	return r.Compare(date) < 0
}

// After reports whether the whole range follows date, i.e. date < r.
// date >= r is therefore !r.After(date).
func (r DateRange) After(date yadate.Date) bool {
	return r.Compare(date) > 0
}

// Iter yields, in ascending order, every day of [lower, upper] inside the range.
// A zero lower or upper defaults to Min or Max; if that is unavailable too,
// Iter fails with ErrMissingBound.
//
// Example usage:
//
//	days, err := yadaterange.MustParse("2020-01-01..").Iter(yadate.Date{}, yadate.MustParse("2020-01-03"))
func (r DateRange) Iter(lower, upper yadate.Date) (iter.Seq[yadate.Date], yaerrors.Error) {
	if lower.IsZero() {
		lower, _ = r.Min()
	}

	if upper.IsZero() {
		upper, _ = r.Max()
	}

	if lower.IsZero() || upper.IsZero() {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrMissingBound,
			fmt.Sprintf("iterate date range %q", r.String()),
		)
	}

	return func(yield func(yadate.Date) bool) {
		for date := range yadate.Incl(lower, upper) {
			if r.Contains(date) && !yield(date) {
				return
			}
		}
	}, nil
}

// All yields every day of the range. It fails with ErrOpenRange when the
// range is unbounded on either side.
func (r DateRange) All() (iter.Seq[yadate.Date], yaerrors.Error) {
	lower, lowerOK := r.Min()
	upper, upperOK := r.Max()

	if !lowerOK || !upperOK {
		return nil, yaerrors.FromError(
			http.StatusBadRequest,
			ErrOpenRange,
			fmt.Sprintf("iterate all of date range %q", r.String()),
		)
	}

	return r.Iter(lower, upper)
}

// Months yields one DateRange of single days per run of consecutive days
// sharing a month number.
//
// Runs are split on the month number alone, so two same-numbered months of
// different years end up in one group when no day lies between them, as in
// "2020-12-31,2021-12-01".
func (r DateRange) Months() (iter.Seq[DateRange], yaerrors.Error) {
	days, err := r.All()
	if err != nil {
		return nil, err.Wrap("group date range by month")
	}

	return func(yield func(DateRange) bool) {
		var group []yadate.Date

		for day := range days {
			if len(group) > 0 && group[0].Month() != day.Month() {
				if !yield(fromDays(group)) {
					return
				}

				group = nil
			}

			group = append(group, day)
		}

		if len(group) > 0 {
			yield(fromDays(group))
		}
	}, nil
}

// String renders the range in canonical form. Month shorthands are expanded
// to explicit days.
func (r DateRange) String() string {
	return strings.Join(
		lo.Map(r.subranges, func(s Subrange, _ int) string { return s.String() }),
		ComponentSeparator,
	)
}

// fromDays builds the range of the given single days, sorted.
func fromDays(days []yadate.Date) DateRange {
	sorted := slices.SortedFunc(slices.Values(days), yadate.Compare)

	return DateRange{
		subranges: lo.Map(sorted, func(day yadate.Date, _ int) Subrange {
			return Subrange{Lower: day, Upper: day}
		}),
	}
}
