// Package parser provides workbook parsing utilities.
package parser

import (
	"strconv"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/xuri/excelize/v2"
)

// ReadStyledRows reads every row of a sheet with raw (values-only) cell
// contents and the bold flag of each non-empty cell. It also returns the
// sheet's column count, the width of its widest row.
func ReadStyledRows(f *excelize.File, sheetName string) ([]models.StyledRow, int, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, err
	}

	bold := make(map[int]bool)
	width := 0
	result := make([]models.StyledRow, 0, len(rows))
	for rowIdx, row := range rows {
		rowNum := rowIdx + 1 // 1-based row index
		if len(row) > width {
			width = len(row)
		}

		cells := make([]models.StyledCell, len(row))
		for colIdx, cellValue := range row {
			cells[colIdx].Value = cellValue
			if cellValue == "" {
				continue
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			if err != nil {
				return nil, 0, err
			}
			isBold, err := cellIsBold(f, sheetName, cellName, bold)
			if err != nil {
				return nil, 0, err
			}
			cells[colIdx].Bold = isBold
		}

		result = append(result, models.StyledRow{R: rowNum, Cells: cells})
	}

	return result, width, nil
}

// cellIsBold resolves the font weight of a cell. Results are memoized per
// style index since a workbook usually has only a handful of styles.
func cellIsBold(f *excelize.File, sheetName, cellName string, cache map[int]bool) (bool, error) {
	styleIdx, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if b, ok := cache[styleIdx]; ok {
		return b, nil
	}

	style, err := f.GetStyle(styleIdx)
	if err != nil {
		return false, err
	}
	b := style != nil && style.Font != nil && style.Font.Bold
	cache[styleIdx] = b
	return b, nil
}

// ExtractDataRows converts the rows below a header into CellRows keyed by
// header label. Rows without any value are skipped.
func ExtractDataRows(rows []models.StyledRow, header *models.HeaderRow) []models.CellRow {
	var result []models.CellRow
	for _, row := range rows {
		if row.R <= header.R {
			continue
		}

		cellMap := make(map[string]interface{})
		for colIdx, cell := range row.Cells {
			if cell.Value == "" {
				continue
			}
			cellMap[columnKey(header.Labels, colIdx)] = parseValue(cell.Value)
		}

		if len(cellMap) > 0 {
			result = append(result, models.CellRow{R: row.R, C: cellMap})
		}
	}

	return result
}

// columnKey returns the label of a column, or its 1-based index when the
// header has no label there.
func columnKey(labels []string, colIdx int) string {
	if colIdx < len(labels) && labels[colIdx] != "" {
		return labels[colIdx]
	}
	return strconv.Itoa(colIdx + 1)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
