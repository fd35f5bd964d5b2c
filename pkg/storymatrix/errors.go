package storymatrix

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input workbook or document does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrDirNotFound indicates the route tree root does not exist or is not a directory.
var ErrDirNotFound = errors.New("directory not found")

// ErrSheetNotFound indicates a sheet name is not present in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrHeaderNotFound indicates the header label could not be located in the search range.
var ErrHeaderNotFound = errors.New("header not found")

// SheetError represents an error while operating on a single sheet.
type SheetError struct {
	Sheet string
	Op    string // "read", "sync", "map", "verify", "generate"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, op string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
