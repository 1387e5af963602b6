package yadaterange

const (
	// ComponentSeparator separates subranges in a date range expression.
	ComponentSeparator = ","
	// BoundSeparator separates the lower and upper bound of one subrange.
	BoundSeparator = ".."
)
