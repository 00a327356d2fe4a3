// Package sheetcheck extracts header rows, column values and payment
// transactions from batch workbooks.
package sheetcheck

import "github.com/boost-qa/sheetcheck/pkg/sheetcheck/parser"

// DefaultTransactionSheet is the sheet holding payment transactions.
const DefaultTransactionSheet = "Transactions"

// Options configures header extraction.
type Options struct {
	// BoldThreshold is the minimum bold share of a row's populated cells
	// for it to be a header. Zero means parser.DefaultBoldThreshold.
	BoldThreshold float64
	// Sheets restricts extraction to the named sheets. Empty means all.
	Sheets []string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		BoldThreshold: parser.DefaultBoldThreshold,
	}
}

func (o Options) threshold() float64 {
	if o.BoldThreshold <= 0 {
		return parser.DefaultBoldThreshold
	}
	return o.BoldThreshold
}

func (o Options) includes(sheetName string) bool {
	if len(o.Sheets) == 0 {
		return true
	}
	for _, s := range o.Sheets {
		if s == sheetName {
			return true
		}
	}
	return false
}

// TransactionOptions configures transaction extraction.
type TransactionOptions struct {
	// Sheet is the transactions sheet name. Empty means DefaultTransactionSheet.
	Sheet  string
	Params parser.TransactionParams
}

// DefaultTransactionOptions returns default transaction extraction options.
func DefaultTransactionOptions() TransactionOptions {
	return TransactionOptions{
		Sheet:  DefaultTransactionSheet,
		Params: parser.DefaultTransactionParams(),
	}
}
