package climate

import "errors"

var (
	// ErrDataFormat is returned for malformed or misaligned CSV data:
	// missing rows, short rows, unparsable numbers, incomplete years.
	ErrDataFormat = errors.New("data format error")
	// ErrArithmetic is returned when a deviation would divide by a zero actual temperature.
	ErrArithmetic = errors.New("arithmetic error")
	// ErrFileAccess is returned when a dataset file cannot be opened.
	ErrFileAccess = errors.New("file access error")

	ErrUnknownCity         = errors.New("unknown city")
	ErrYearOutOfRange      = errors.New("year out of range")
	ErrIncompleteSnapshots = errors.New("snapshots incomplete")
)
