package sheetcheck

import (
	"errors"
	"fmt"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrHeaderNotFound indicates no row of the sheet qualifies as a header.
var ErrHeaderNotFound = parser.ErrHeaderNotFound

// ErrColumnNotFound indicates no header label matches the requested column.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoDataRows indicates the header is not followed by any populated row.
var ErrNoDataRows = errors.New("no data rows below header")

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	SheetName string
	Component string // "headers", "rows", "transactions"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
