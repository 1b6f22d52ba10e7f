package tenderstruct

import (
	"errors"
	"fmt"
)

// ErrNoWorksheet indicates the workbook contains no worksheets.
var ErrNoWorksheet = errors.New("workbook has no worksheets")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("worksheet not found")

// CompileError wraps a failure of one compilation stage. Absence of
// header rows, lots or a totals block is not an error; those are
// valid empty results.
type CompileError struct {
	Sheet string
	Stage string // "open", "adapt", "normalize"
	Err   error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile error in sheet %q (%s): %v", e.Sheet, e.Stage, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}
