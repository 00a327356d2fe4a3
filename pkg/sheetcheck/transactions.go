package sheetcheck

import (
	"fmt"
	"path/filepath"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// ExtractTransactions groups the transactions sheet of the workbook at path
// into payments and their invoice lines.
func ExtractTransactions(path string, opts TransactionOptions) (*models.TransactionSet, error) {
	sheetName := opts.Sheet
	if sheetName == "" {
		sheetName = DefaultTransactionSheet
	}

	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, NewExtractionError(sheetName, "transactions", err)
	}

	columns, transactions, err := parser.GroupTransactions(rows, opts.Params)
	if err != nil {
		return nil, NewExtractionError(sheetName, "transactions", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	log.Debug().
		Str("sheet", sheetName).
		Int("transactions", len(transactions)).
		Msg("Grouped transactions")

	return &models.TransactionSet{
		BookName:     filepath.Base(path),
		Sheet:        sheetName,
		Columns:      columns,
		Transactions: transactions,
	}, nil
}
