package sheetcheck

import (
	"fmt"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"
)

// ColumnValue returns the value of the header column whose label contains
// column (case-insensitive) in the first populated row below the header.
func ColumnValue(path, sheetName, column string, opts Options) (string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	rows, header, err := loadSheetHeader(f, sheetName, opts)
	if err != nil {
		return "", err
	}

	colIdx, ok := parser.FindColumn(header.Labels, column)
	if !ok {
		return "", fmt.Errorf("%w: %q in sheet %s", ErrColumnNotFound, column, sheetName)
	}

	for _, row := range rows {
		if row.R <= header.R || !hasValue(row) {
			continue
		}
		if colIdx < len(row.Cells) {
			return row.Cells[colIdx].Value, nil
		}
		return "", nil
	}

	return "", fmt.Errorf("%w: sheet %s", ErrNoDataRows, sheetName)
}

// DataRows returns the populated rows below a sheet's header, keyed by
// header label.
func DataRows(path, sheetName string, opts Options) ([]models.CellRow, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, header, err := loadSheetHeader(f, sheetName, opts)
	if err != nil {
		return nil, err
	}
	return parser.ExtractDataRows(rows, header), nil
}

// ValidateHeaders returns the expected labels missing from a sheet's
// header. The result is empty when every label is present.
func ValidateHeaders(path, sheetName string, expected []string, opts Options) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, header, err := loadSheetHeader(f, sheetName, opts)
	if err != nil {
		return nil, err
	}
	return parser.MissingHeaders(header.Labels, expected), nil
}

func hasValue(row models.StyledRow) bool {
	for _, c := range row.Cells {
		if c.Value != "" {
			return true
		}
	}
	return false
}
