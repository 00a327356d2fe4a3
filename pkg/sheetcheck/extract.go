package sheetcheck

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExtractHeaders returns the header labels of every sheet in the workbook
// at path. Sheets without a qualifying header row are left out. Each call
// builds a new map.
func ExtractHeaders(path string, opts Options) (models.HeaderMap, error) {
	wb, err := ExtractWorkbookHeaders(path, opts)
	if err != nil {
		return nil, err
	}
	return wb.Map(), nil
}

// ExtractWorkbookHeaders returns the header rows of the workbook at path in
// sheet order, with their row numbers and data ranges.
func ExtractWorkbookHeaders(path string, opts Options) (*models.WorkbookHeaders, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.WorkbookHeaders{
		BookName: filepath.Base(path),
		Headers:  []models.HeaderRow{},
	}

	for _, sheetName := range f.GetSheetList() {
		if !opts.includes(sheetName) {
			continue
		}

		rows, width, err := parser.ReadStyledRows(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "headers", err)
		}

		header, ok := parser.LocateHeader(sheetName, rows, width, opts.threshold())
		if !ok {
			log.Debug().Str("book", wb.BookName).Str("sheet", sheetName).Msg("No header row found")
			continue
		}
		log.Debug().
			Str("book", wb.BookName).
			Str("sheet", sheetName).
			Int("row", header.R).
			Int("columns", len(header.Labels)).
			Msg("Header row found")

		wb.Headers = append(wb.Headers, *header)
	}

	return wb, nil
}

// openWorkbook opens an xlsx file read-only and classifies open failures.
func openWorkbook(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFormat, path, err)
	}
	return f, nil
}

// loadSheetHeader reads one sheet and locates its header row.
func loadSheetHeader(f *excelize.File, sheetName string, opts Options) ([]models.StyledRow, *models.HeaderRow, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, width, err := parser.ReadStyledRows(f, sheetName)
	if err != nil {
		return nil, nil, NewExtractionError(sheetName, "rows", err)
	}

	header, ok := parser.LocateHeader(sheetName, rows, width, opts.threshold())
	if !ok {
		return rows, nil, fmt.Errorf("%w: sheet %s", ErrHeaderNotFound, sheetName)
	}
	return rows, header, nil
}
