package parser

import (
	"strings"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
)

// Normalized names of the invoice columns of a transactions sheet.
const (
	ColNumberOfItems      = "number of items"
	ColInvoiceNumber      = "invoice number"
	ColAccountNumber      = "account number"
	ColInvoiceDate        = "invoice date"
	ColInvoiceAmount      = "invoice amount"
	ColTotalInvoiceAmount = "total invoice amount"
)

// TransactionParams holds parameters for transaction grouping.
type TransactionParams struct {
	// MinHeaderCells is the number of non-empty cells a row must exceed
	// to be taken as the header.
	MinHeaderCells int
	// SkipColumns is the number of leading columns ignored in header and data.
	SkipColumns int
	// RequiredColumns are normalized column names that must be present.
	RequiredColumns []string
}

// DefaultTransactionParams returns default transaction grouping parameters.
func DefaultTransactionParams() TransactionParams {
	return TransactionParams{
		MinHeaderCells: 5,
		SkipColumns:    1,
		RequiredColumns: []string{
			ColNumberOfItems,
			ColInvoiceNumber,
			ColAccountNumber,
			ColInvoiceDate,
			ColInvoiceAmount,
			ColTotalInvoiceAmount,
		},
	}
}

// GroupTransactions groups the rows of a transactions sheet into payments.
// A row with a date starts a new transaction; it and the rows following it
// without a date each contribute one invoice line. It returns the
// normalized column names along with the transactions.
func GroupTransactions(rows [][]string, params TransactionParams) ([]string, []models.Transaction, error) {
	headerIdx := -1
	for idx, row := range rows {
		if countNonEmptyCells(row) > params.MinHeaderCells {
			headerIdx = idx
			break
		}
	}
	if headerIdx < 0 {
		return nil, nil, ErrHeaderNotFound
	}

	columns := normalizeColumns(skip(rows[headerIdx], params.SkipColumns))

	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if _, seen := index[col]; !seen && col != "" {
			index[col] = i
		}
	}

	var missing []string
	required := make(map[string]struct{}, len(params.RequiredColumns))
	for _, col := range params.RequiredColumns {
		required[col] = struct{}{}
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return columns, nil, &MissingColumnsError{Missing: missing, Available: columns}
	}

	dateIdx := -1
	for i, col := range columns {
		if strings.Contains(col, "date") {
			dateIdx = i
			break
		}
	}
	if dateIdx < 0 {
		return columns, nil, ErrNoDateColumn
	}

	var (
		transactions []models.Transaction
		current      *models.Transaction
	)
	for idx := headerIdx + 1; idx < len(rows); idx++ {
		values := skip(rows[idx], params.SkipColumns)
		get := func(col string) string {
			i, ok := index[col]
			if !ok {
				return ""
			}
			return at(values, i)
		}

		if at(values, dateIdx) != "" {
			if current != nil {
				transactions = append(transactions, *current)
			}
			current = &models.Transaction{
				R:         idx + 1,
				ItemCount: get(ColNumberOfItems),
				Fields:    make(map[string]string),
				Invoices:  []models.Invoice{},
			}
			for i, col := range columns {
				if _, isRequired := required[col]; isRequired || col == "" {
					continue
				}
				current.Fields[col] = at(values, i)
			}
		}

		if current == nil {
			continue
		}
		current.Invoices = append(current.Invoices, models.Invoice{
			Number:        get(ColInvoiceNumber),
			AccountNumber: get(ColAccountNumber),
			Date:          get(ColInvoiceDate),
			Amount:        get(ColInvoiceAmount),
			TotalAmount:   get(ColTotalInvoiceAmount),
		})
	}
	if current != nil {
		transactions = append(transactions, *current)
	}

	return columns, transactions, nil
}

func normalizeColumns(labels []string) []string {
	columns := make([]string, len(labels))
	for i, label := range labels {
		columns[i] = NormalizeHeader(label)
	}
	return columns
}

func skip(row []string, n int) []string {
	if n <= 0 {
		return row
	}
	if n >= len(row) {
		return nil
	}
	return row[n:]
}

func at(values []string, i int) string {
	if i < 0 || i >= len(values) {
		return ""
	}
	return strings.TrimSpace(values[i])
}
