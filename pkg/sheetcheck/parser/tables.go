package parser

import (
	"fmt"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/xuri/excelize/v2"
)

// DataRegion returns the cell range (e.g. "A3:E10") bounding the non-empty
// cells below rows[headerIdx]. It returns "" when nothing follows the header.
func DataRegion(rows []models.StyledRow, headerIdx int) string {
	if headerIdx+1 >= len(rows) {
		return ""
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows[headerIdx+1:])
	if minRow < 0 {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol+1, minRow)
	endCell, _ := excelize.CoordinatesToCellName(maxCol+1, maxRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of non-empty cells.
// Rows are reported 1-based, columns 0-based; minRow is -1 when all cells are empty.
func findDataBounds(rows []models.StyledRow) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row.Cells {
			if cell.Value == "" {
				continue
			}
			if minRow < 0 || row.R < minRow {
				minRow = row.R
			}
			if maxRow < 0 || row.R > maxRow {
				maxRow = row.R
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts the populated cells of a row.
func countNonEmptyCells(row []string) int {
	count := 0
	for _, cell := range row {
		if cell != "" {
			count++
		}
	}
	return count
}
