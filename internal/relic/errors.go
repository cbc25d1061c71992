package relic

import "errors"

// Sentinel errors for dataset operations.
var (
	// ErrUnknownField indicates SetField was called with a field that is not
	// operator-editable.
	ErrUnknownField = errors.New("unknown or read-only field")
	// ErrUnknownColumn indicates SortBy was called with a column that does
	// not exist.
	ErrUnknownColumn = errors.New("unknown sort column")
	// ErrNoHeader indicates the import source had no header row.
	ErrNoHeader = errors.New("missing header row")
)

// ParseError reports an import source that could not be read or decoded.
// Row-level problems never produce a ParseError; they degrade to skipped
// rows or zero-valued fields.
type ParseError struct {
	Path string
	Err  error
}

// Error returns a human-readable message including the source path.
func (e *ParseError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatError reports a project snapshot that is structurally invalid or
// missing required keys. The in-memory dataset is left untouched when a
// load fails with a FormatError.
type FormatError struct {
	Path   string
	Reason string
}

// Error returns a human-readable message including the snapshot path.
func (e *FormatError) Error() string {
	return e.Path + ": invalid project file: " + e.Reason
}
