package yadate

// Year bounds accepted by ParseYearMonth, matching what Parse can read.
const (
	MinYear = 1
	MaxYear = 9999
)
