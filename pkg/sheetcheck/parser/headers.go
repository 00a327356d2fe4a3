package parser

import (
	"strings"

	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
)

// DefaultBoldThreshold is the minimum share of bold cells, among the
// populated cells of a row, for that row to be taken as a header.
const DefaultBoldThreshold = 0.5

// IsHeaderRow reports whether the bold share of a row's populated cells is
// at least threshold. A row without populated cells is never a header.
func IsHeaderRow(cells []models.StyledCell, threshold float64) bool {
	populated, bold := 0, 0
	for _, c := range cells {
		if c.Value == "" {
			continue
		}
		populated++
		if c.Bold {
			bold++
		}
	}
	if populated == 0 {
		return false
	}
	return float64(bold) >= float64(populated)*threshold
}

// LocateHeader returns the first row, scanning top to bottom, that passes
// IsHeaderRow. Its labels are padded with "" up to width so positional
// column lookups stay valid.
func LocateHeader(sheetName string, rows []models.StyledRow, width int, threshold float64) (*models.HeaderRow, bool) {
	for idx, row := range rows {
		if !IsHeaderRow(row.Cells, threshold) {
			continue
		}

		n := width
		if len(row.Cells) > n {
			n = len(row.Cells)
		}
		labels := make([]string, n)
		copy(labels, row.Values())

		return &models.HeaderRow{
			Sheet:     sheetName,
			R:         row.R,
			Labels:    labels,
			DataRange: DataRegion(rows, idx),
		}, true
	}

	return nil, false
}

// FindColumn returns the index of the first label containing name,
// compared case-insensitively.
func FindColumn(labels []string, name string) (int, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return -1, false
	}
	for idx, label := range labels {
		if label != "" && strings.Contains(strings.ToLower(label), needle) {
			return idx, true
		}
	}
	return -1, false
}

// MissingHeaders returns the expected labels that do not appear in labels.
// Labels are compared trimmed and case-insensitively.
func MissingHeaders(labels, expected []string) []string {
	present := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		present[strings.ToLower(strings.TrimSpace(label))] = struct{}{}
	}

	missing := []string{}
	for _, want := range expected {
		if _, ok := present[strings.ToLower(strings.TrimSpace(want))]; !ok {
			missing = append(missing, want)
		}
	}
	return missing
}

// NormalizeHeader folds a header label to a comparable form: newlines
// become spaces, surrounding space is trimmed and the text lowercased.
func NormalizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ToLower(strings.TrimSpace(s))
}
