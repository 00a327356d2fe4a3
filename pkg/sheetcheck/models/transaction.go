package models

// Invoice is one invoice line of a payment transaction.
type Invoice struct {
	Number        string `json:"invoice_number"`
	AccountNumber string `json:"account_number"`
	Date          string `json:"invoice_date"`
	Amount        string `json:"invoice_amount"`
	TotalAmount   string `json:"total_invoice_amount"`
}

// Transaction is a payment and the invoices it settles.
type Transaction struct {
	// R is the row (1-based) the transaction starts on.
	R int `json:"r"`
	// ItemCount is the "number of items" value of the starting row.
	ItemCount string `json:"number_of_items,omitempty"`
	// Fields maps normalized column name to value for the non-invoice columns.
	Fields map[string]string `json:"fields"`
	// Invoices lists the invoice lines in row order.
	Invoices []Invoice `json:"invoices"`
}

// TransactionSet is the grouped content of a transactions sheet.
type TransactionSet struct {
	BookName     string        `json:"book_name"`
	Sheet        string        `json:"sheet"`
	Columns      []string      `json:"columns"`
	Transactions []Transaction `json:"transactions"`
}
