package sheetcheck

import (
	"errors"
	"testing"

	"github.com/boost-qa/sheetcheck/internal/testkit"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pncWorkbook(t *testing.T) string {
	t.Helper()
	return testkit.WriteWorkbook(t, "20250114-PNC.xlsx", testkit.Sheet{
		Name: "Transactions",
		Rows: []testkit.Row{
			testkit.PlainRow("PNC payment file"),
			testkit.BoldRow("#", "Payer Name", "Supplier Name", "Payment Date", "Number of Items",
				"Invoice Number", "Account Number", "Invoice Date", "Invoice Amount", "Total Invoice Amount"),
			testkit.PlainRow(1, "Acme", "Widgets Inc", "2025-01-14", 2, "INV-1", "ACC-9", "2025-01-01", 100, 250),
			testkit.PlainRow("", "", "", "", "", "INV-2", "ACC-9", "2025-01-02", 150, 250),
			testkit.PlainRow(2, "Acme", "Bolts LLC", "2025-01-15", 1, "INV-3", "ACC-7", "2025-01-03", 75, 75),
		},
	})
}

func TestExtractTransactions(t *testing.T) {
	set, err := ExtractTransactions(pncWorkbook(t), DefaultTransactionOptions())
	require.NoError(t, err)

	assert.Equal(t, "20250114-PNC.xlsx", set.BookName)
	assert.Equal(t, "Transactions", set.Sheet)
	assert.Contains(t, set.Columns, "total invoice amount")

	require.Len(t, set.Transactions, 2)
	first := set.Transactions[0]
	assert.Equal(t, "2", first.ItemCount)
	assert.Equal(t, "Widgets Inc", first.Fields["supplier name"])
	require.Len(t, first.Invoices, 2)
	assert.Equal(t, "INV-2", first.Invoices[1].Number)
	assert.Equal(t, "150", first.Invoices[1].Amount)
}

func TestExtractTransactionsDefaultsSheet(t *testing.T) {
	opts := DefaultTransactionOptions()
	opts.Sheet = ""

	set, err := ExtractTransactions(pncWorkbook(t), opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultTransactionSheet, set.Sheet)
}

func TestExtractTransactionsErrors(t *testing.T) {
	path := pncWorkbook(t)

	opts := DefaultTransactionOptions()
	opts.Sheet = "Payments"
	_, err := ExtractTransactions(path, opts)
	assert.ErrorIs(t, err, ErrSheetNotFound)

	opts = DefaultTransactionOptions()
	opts.Params.RequiredColumns = append(opts.Params.RequiredColumns, "source name")
	_, err = ExtractTransactions(path, opts)

	var extractErr *ExtractionError
	require.True(t, errors.As(err, &extractErr))
	assert.Equal(t, "transactions", extractErr.Component)

	var missingErr *parser.MissingColumnsError
	require.True(t, errors.As(err, &missingErr))
	assert.Equal(t, []string{"source name"}, missingErr.Missing)
}
