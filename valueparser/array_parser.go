package valueparser

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
)

// ParseArray splits a string by 'separator' and parses each part into T.
// If the string is empty, it returns an empty slice.
// If 'separator' is nil, it defaults to DefaultEntrySeparator.
// Values that contain commas themselves, such as date ranges, need another separator.
//
// Example usage:
//
//	separator := ";"
//	windows, err := valueparser.ParseArray[yadaterange.DateRange]("2020-01..2020-03;2021-01", &separator)
//	if err != nil {
//		// Handle error
//	}
func ParseArray[T any](
	str string,
	separator *string,
) ([]T, yaerrors.Error) {
	parsed, err := ParseArrayOfType(str, separator, reflect.TypeFor[T]())
	if err != nil {
		return nil, err
	}

	result, _ := parsed.Interface().([]T)

	return result, nil
}

// ParseArrayOfType is ParseArray for an element type only known at run time.
// The returned value is a slice of elemType.
func ParseArrayOfType(
	str string,
	separator *string,
	elemType reflect.Type,
) (reflect.Value, yaerrors.Error) {
	sliceType := reflect.SliceOf(elemType)

	if str == "" {
		return reflect.MakeSlice(sliceType, 0, 0), nil
	}

	if separator == nil {
		s := DefaultEntrySeparator
		separator = &s
	}

	parts := strings.Split(str, *separator)
	result := reflect.MakeSlice(sliceType, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)

		parsed, err := ParseValueOfType(trimmed, elemType)
		if err != nil {
			return reflect.Value{}, err.Wrap(
				fmt.Sprintf(
					"parse array: failed to parse part '%s'",
					trimmed,
				),
			)
		}

		result = reflect.Append(result, parsed)
	}

	return result, nil
}
