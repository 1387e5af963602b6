package yabytes

import (
	"fmt"
	"net/http"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yaerrors"
	"github.com/samber/lo"
)

// Unit is a byte unit: the suffix it is written with and how many bytes it holds.
type Unit struct {
	suffix string
	factor int64
}

var (
	Byte     = Unit{suffix: "", factor: 1}
	Kibibyte = Unit{suffix: "Ki", factor: 1 << 10}
	Mebibyte = Unit{suffix: "Mi", factor: 1 << 20}
	Gibibyte = Unit{suffix: "Gi", factor: 1 << 30}
	Tebibyte = Unit{suffix: "Ti", factor: 1 << 40}
	Kilobyte = Unit{suffix: "K", factor: 1_000}
	Megabyte = Unit{suffix: "M", factor: 1_000_000}
	Gigabyte = Unit{suffix: "G", factor: 1_000_000_000}
	Terabyte = Unit{suffix: "T", factor: 1_000_000_000_000}
)

var (
	units         = []Unit{Byte, Kibibyte, Mebibyte, Gibibyte, Tebibyte, Kilobyte, Megabyte, Gigabyte, Terabyte}
	unitsBySuffix = lo.KeyBy(units, Unit.Suffix)
)

// Units returns every supported unit, bytes first.
func Units() []Unit {
	return append([]Unit(nil), units...)
}

// ParseUnit looks a unit up by its suffix, e.g. "Mi". Suffixes are case sensitive.
func ParseUnit(suffix string) (Unit, yaerrors.Error) {
	unit, ok := unitsBySuffix[suffix]
	if !ok {
		return Unit{}, yaerrors.FromError(
			http.StatusBadRequest,
			ErrUnknownUnit,
			fmt.Sprintf("parse unit %q", suffix),
		)
	}

	return unit, nil
}

// Suffix returns the suffix u is written with; empty for plain bytes.
func (u Unit) Suffix() string {
	return u.suffix
}

// Factor returns how many bytes one u holds.
func (u Unit) Factor() int64 {
	return u.factor
}
