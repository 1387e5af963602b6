// Package yarange generates lazy, finite, stepped sequences of ordered values.
//
// A sequence starts at a lower bound, advances through a step function and
// stops the moment a continuation condition turns false. Every range over a
// returned iter.Seq starts again from the lower bound.
//
// Example usage:
//
//	for i := range yarange.Incl(1, 10, yarange.By(3)) {
//		fmt.Println(i) // 1 4 7 10
//	}
//
// The step must move towards the bound; a step that never breaks the
// condition produces an endless sequence.
package yarange

import (
	"cmp"
	"iter"
)

// Step maps a value to its successor.
type Step[E any] func(E) E

// Number is any value By can add to.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// By returns a step adding n.
func By[N Number](n N) Step[N] {
	return func(value N) N {
		return value + n
	}
}

// Unit returns the +1 step.
func Unit[N Number]() Step[N] {
	return By(N(1))
}

// Range yields lower, step(lower), step(step(lower)), ... while condition holds.
func Range[E any](lower E, step Step[E], condition func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for current := lower; condition(current); current = step(current) {
			if !yield(current) {
				return
			}
		}
	}
}

// Incl yields values from lower up to and including upper.
// A nil step means Unit.
//
// Example usage:
//
//	slices.Collect(yarange.Incl(1, 4, nil)) // [1 2 3 4]
func Incl[E Number](lower, upper E, step Step[E]) iter.Seq[E] {
	return InclFunc(lower, upper, orUnit(step), cmp.Compare[E])
}

// Excl yields values from lower up to but excluding upper.
// A nil step means Unit.
func Excl[E Number](lower, upper E, step Step[E]) iter.Seq[E] {
	return ExclFunc(lower, upper, orUnit(step), cmp.Compare[E])
}

// InclFunc is Incl for element types ordered by compare instead of <.
func InclFunc[E any](lower, upper E, step Step[E], compare func(a, b E) int) iter.Seq[E] {
	return Range(lower, step, func(value E) bool {
		return compare(value, upper) <= 0
	})
}

// ExclFunc is Excl for element types ordered by compare instead of <.
func ExclFunc[E any](lower, upper E, step Step[E], compare func(a, b E) int) iter.Seq[E] {
	return Range(lower, step, func(value E) bool {
		return compare(value, upper) < 0
	})
}

func orUnit[N Number](step Step[N]) Step[N] {
	if step == nil {
		return Unit[N]()
	}

	return step
}
