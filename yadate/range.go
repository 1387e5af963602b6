package yadate

import (
	"iter"

	"github.com/YaCodeDev/GoYaCodeDevTypes/yarange"
)

// Days returns a step moving a date by n days.
func Days(n int) yarange.Step[Date] {
	return func(d Date) Date {
		return d.AddDays(n)
	}
}

// Incl yields every day from lower through upper.
//
// Example usage:
//
//	for d := range yadate.Incl(yadate.MustParse("2020-02-27"), yadate.MustParse("2020-03-02")) {
//		fmt.Println(d) // 02-27 02-28 02-29 03-01 03-02
//	}
func Incl(lower, upper Date) iter.Seq[Date] {
	return InclStep(lower, upper, 1)
}

// Excl yields every day from lower up to but excluding upper.
func Excl(lower, upper Date) iter.Seq[Date] {
	return ExclStep(lower, upper, 1)
}

// InclStep yields lower, lower+days, ... while not after upper.
func InclStep(lower, upper Date, days int) iter.Seq[Date] {
	return yarange.InclFunc(lower, upper, Days(days), Compare)
}

// ExclStep yields lower, lower+days, ... while before upper.
func ExclStep(lower, upper Date, days int) iter.Seq[Date] {
	return yarange.ExclFunc(lower, upper, Days(days), Compare)
}
