package models

// HeaderRow is the detected header row of a sheet.
type HeaderRow struct {
	// Sheet is the owning sheet name.
	Sheet string `json:"sheet"`
	// R is the header row index (1-based).
	R int `json:"r"`
	// Labels has one entry per sheet column; empty cells are "".
	Labels []string `json:"labels"`
	// DataRange bounds the non-empty cells below the header (e.g. "A3:E12").
	DataRange string `json:"data_range,omitempty"`
}

// HeaderMap maps sheet name to that sheet's header labels.
type HeaderMap map[string][]string
