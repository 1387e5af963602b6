// Package yabytes provides Bytes, an exact byte count written the way
// Kubernetes-style quantities are: "2344Ki", "10M", "512".
//
// Binary units (Ki, Mi, Gi, Ti) are powers of 1024, decimal units (K, M, G, T)
// powers of 1000.
//
// Example usage:
//
//	size, err := yabytes.Parse("2344Ki")
//	if err != nil {
//		// Handle error
//	}
//
//	fmt.Println(size.Format(yabytes.Kibibyte)) // 2344Ki
//	fmt.Println(size.Format(yabytes.Byte))     // 2400256
package yabytes

import (
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
	"github.com/dustin/go-humanize"
)

var quantityPattern = regexp.MustCompile(`^(?P<digits>[0-9]+)(?P<unit>[A-Za-z]+)$`)

// Bytes is an exact number of bytes.
type Bytes struct {
	bytes int64
}

// New returns n bytes.
func New(n int64) Bytes {
	return Bytes{bytes: n}
}

// Parse reads a plain integer byte count, or digits followed by a unit suffix.
//
// Example usage:
//
//	size, err := yabytes.Parse("512Mi")
func Parse(value string) (Bytes, yaerrors.Error) {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return New(n), nil
	}

	match := quantityPattern.FindStringSubmatch(value)
	if match == nil {
		return Bytes{}, yaerrors.FromError(
			http.StatusBadRequest,
			ErrInvalidFormat,
			fmt.Sprintf("parse bytes %q", value),
		)
	}

	unit, err := ParseUnit(match[quantityPattern.SubexpIndex("unit")])
	if err != nil {
		return Bytes{}, err.Wrap(fmt.Sprintf("parse bytes %q", value))
	}

	digits, parseErr := strconv.ParseInt(match[quantityPattern.SubexpIndex("digits")], 10, 64)
	if parseErr != nil || digits > math.MaxInt64/unit.factor {
		return Bytes{}, yaerrors.FromError(
			http.StatusBadRequest,
			ErrOverflow,
			fmt.Sprintf("parse bytes %q", value),
		)
	}

	return New(digits * unit.factor), nil
}

// MustParse is Parse that panics on error. Intended for literals.
func MustParse(value string) Bytes {
	size, err := Parse(value)
	if err != nil {
		panic(err)
	}

	return size
}

// Int64 returns the byte count.
func (b Bytes) Int64() int64 {
	return b.bytes
}

// Convert returns the byte count in unit, truncated towards zero.
func (b Bytes) Convert(unit Unit) int64 {
	return b.bytes / unit.factor
}

// Format renders the byte count in unit, e.g. "2344Ki". Remainders are dropped.
func (b Bytes) Format(unit Unit) string {
	return strconv.FormatInt(b.Convert(unit), 10) + unit.suffix
}

// String renders the exact byte count.
func (b Bytes) String() string {
	return b.Format(Byte)
}

// Humanize renders the size for people, e.g. "2.3 MiB". Unlike Format it may round.
func (b Bytes) Humanize() string {
	if b.bytes < 0 {
		return "-" + humanize.IBytes(uint64(-b.bytes))
	}

	return humanize.IBytes(uint64(b.bytes))
}
