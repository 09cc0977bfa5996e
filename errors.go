package xvg

import "errors"

var (
	// ErrMissingArgument indicates that a recognized header directive is
	// missing a required argument token, e.g. a 'title' directive with no
	// value or an 'sN legend' directive with no column name.
	ErrMissingArgument = errors.New("header directive is missing an argument")

	// ErrRaggedRow indicates that the data rows do not all have the same
	// number of fields.
	ErrRaggedRow = errors.New("data rows have inconsistent field counts")

	// ErrInvalidNumber indicates that a data field could not be parsed as a
	// floating-point number.
	ErrInvalidNumber = errors.New("data field is not a valid number")
)

var (
	// ErrUnknownColumn indicates that a column name was never registered by
	// an 'sN legend' directive.
	ErrUnknownColumn = errors.New("unknown column name")

	// ErrColumnOutOfRange indicates that a column index is outside the
	// parsed matrix.
	ErrColumnOutOfRange = errors.New("column index out of range")

	// ErrNoData indicates that the input contained no data rows, so there
	// is no matrix to index into.
	ErrNoData = errors.New("no data rows were parsed")
)
