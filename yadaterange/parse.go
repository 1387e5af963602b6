package yadaterange

import (
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yadate"
	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
)

// Parse reads a date range expression: comma separated components, each one of
//
//	2020-04-01             a single day
//	2020-04                a whole month
//	2020-04-01..2020-05-20 an inclusive interval, either bound may be a YEAR-MONTH
//	2020-06-01..           everything from a day on
//	..2020-06-01           everything up to a day
//
// Whitespace anywhere in the expression is ignored. The first malformed
// component fails the whole parse.
//
// Example usage:
//
//	dateRange, err := yadaterange.Parse("2020-04-01,2020-05-01..2020-05-20,2020-06-01..")
//	if err != nil {
//		// Handle error
//	}
func Parse(value string) (DateRange, yaerrors.Error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, value)

	components := strings.Split(compact, ComponentSeparator)
	subranges := make([]Subrange, 0, len(components))

	for i, component := range components {
		subrange, err := parseComponent(component)
		if err != nil {
			return DateRange{}, err.Wrap(
				fmt.Sprintf("parse date range %q: component %d", value, i+1),
			)
		}

		subranges = append(subranges, subrange)
	}

	return DateRange{subranges: subranges}, nil
}

// MustParse is Parse that panics on error. Intended for literals.
func MustParse(value string) DateRange {
	dateRange, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return dateRange
}

func parseComponent(component string) (Subrange, yaerrors.Error) {
	bounds := strings.Split(component, BoundSeparator)

	switch len(bounds) {
	case 1:
		lower, err := beginOf(component)
		if err != nil {
			return Subrange{}, err
		}

		upper, err := endOf(component)
		if err != nil {
			return Subrange{}, err
		}

		return Subrange{Lower: lower, Upper: upper}, nil

	case 2:
		if bounds[0] == "" && bounds[1] == "" {
			return Subrange{}, yaerrors.FromError(
				http.StatusBadRequest,
				ErrInvalidComponent,
				fmt.Sprintf("%q has neither a lower nor an upper bound", component),
			)
		}

		var (
			subrange Subrange
			err      yaerrors.Error
		)

		if bounds[0] != "" {
			if subrange.Lower, err = beginOf(bounds[0]); err != nil {
				return Subrange{}, err
			}
		}

		if bounds[1] != "" {
			if subrange.Upper, err = endOf(bounds[1]); err != nil {
				return Subrange{}, err
			}
		}

		return subrange, nil

	default:
		return Subrange{}, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidComponent,
			fmt.Sprintf("%q has more than one %q", component, BoundSeparator),
		)
	}
}

// beginOf reads a lower bound: a YEAR-MONTH means its first day.
func beginOf(value string) (yadate.Date, yaerrors.Error) {
	first, isYearMonth, err := yadate.ParseYearMonth(value)
	if isYearMonth {
		return first, err
	}

	return yadate.Parse(value)
}

// endOf reads an upper bound: a YEAR-MONTH means its last day.
func endOf(value string) (yadate.Date, yaerrors.Error) {
	first, isYearMonth, err := yadate.ParseYearMonth(value)
	if isYearMonth {
		if err != nil {
			return yadate.Date{}, err
		}

		return first.EndOfMonth(), nil
	}

	return yadate.Parse(value)
}
