package models

// WorkbookHeaders holds the header rows of a workbook in sheet order.
type WorkbookHeaders struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Headers contains one entry per sheet that has a header row.
	Headers []HeaderRow `json:"headers"`
}

// Map returns the headers as a HeaderMap.
func (w *WorkbookHeaders) Map() HeaderMap {
	m := make(HeaderMap, len(w.Headers))
	for _, h := range w.Headers {
		m[h.Sheet] = h.Labels
	}
	return m
}
