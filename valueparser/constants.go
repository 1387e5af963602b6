package valueparser

// DefaultEntrySeparator splits array entries when no separator is given.
const DefaultEntrySeparator = ","
