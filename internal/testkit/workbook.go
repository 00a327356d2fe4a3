// Package testkit builds xlsx fixtures for tests.
package testkit

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Row is one fixture row. Bold lists the 0-based columns whose font is bold.
type Row struct {
	Values []interface{}
	Bold   []int
}

// Sheet is a named fixture sheet. Rows start at row 1; a nil Values slice
// leaves the row empty.
type Sheet struct {
	Name string
	Rows []Row
}

// BoldRow returns a row whose populated cells are all bold.
func BoldRow(values ...interface{}) Row {
	row := Row{Values: values}
	for i, v := range values {
		if v != nil && v != "" {
			row.Bold = append(row.Bold, i)
		}
	}
	return row
}

// PlainRow returns a row without bold cells.
func PlainRow(values ...interface{}) Row {
	return Row{Values: values}
}

// WriteWorkbook saves the sheets, in order, to name inside t.TempDir() and
// returns the file path.
func WriteWorkbook(t testing.TB, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("Failed to create bold style: %v", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("Failed to create sheet %s: %v", sheet.Name, err)
		}

		for r, row := range sheet.Rows {
			for c, v := range row.Values {
				if v == nil || v == "" {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
					t.Fatalf("Failed to set %s!%s: %v", sheet.Name, cell, err)
				}
			}
			for _, c := range row.Bold {
				cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
				if err := f.SetCellStyle(sheet.Name, cell, cell, boldStyle); err != nil {
					t.Fatalf("Failed to style %s!%s: %v", sheet.Name, cell, err)
				}
			}
		}
	}

	path := filepath.Join(t.TempDir(), name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}
