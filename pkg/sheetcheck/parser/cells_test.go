package parser

import (
	"testing"

	"github.com/boost-qa/sheetcheck/internal/testkit"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestReadStyledRows(t *testing.T) {
	path := testkit.WriteWorkbook(t, "test.xlsx", testkit.Sheet{
		Name: "Sheet1",
		Rows: []testkit.Row{
			testkit.BoldRow("Header1", "Header2"),
			testkit.PlainRow(100, 200.5),
			testkit.PlainRow("Text", "", "wide"),
		},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, width, err := ReadStyledRows(f, "Sheet1")
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, 3, width)

	assert.Equal(t, 1, rows[0].R)
	assert.Equal(t, []models.StyledCell{
		{Value: "Header1", Bold: true},
		{Value: "Header2", Bold: true},
	}, rows[0].Cells)

	assert.Equal(t, []string{"100", "200.5"}, rows[1].Values())
	assert.False(t, rows[1].Cells[0].Bold)

	assert.Equal(t, 3, rows[2].R)
	assert.Equal(t, []string{"Text", "", "wide"}, rows[2].Values())
}

func TestReadStyledRowsMissingSheet(t *testing.T) {
	path := testkit.WriteWorkbook(t, "test.xlsx", testkit.Sheet{
		Name: "Sheet1",
		Rows: []testkit.Row{testkit.PlainRow("a")},
	})

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, _, err = ReadStyledRows(f, "Nope")
	assert.Error(t, err)
}

func TestExtractDataRows(t *testing.T) {
	rows := []models.StyledRow{
		{R: 1, Cells: []models.StyledCell{{Value: "Report"}}},
		{R: 2, Cells: []models.StyledCell{{Value: "Date", Bold: true}, {Value: ""}, {Value: "Amount", Bold: true}}},
		{R: 3, Cells: []models.StyledCell{{Value: "2025-01-14"}, {Value: "x"}, {Value: "100.25"}}},
		{R: 4, Cells: []models.StyledCell{}},
		{R: 5, Cells: []models.StyledCell{{Value: ""}, {Value: ""}, {Value: "7"}}},
	}
	header := &models.HeaderRow{Sheet: "S", R: 2, Labels: []string{"Date", "", "Amount"}}

	got := ExtractDataRows(rows, header)

	require.Len(t, got, 2)
	assert.Equal(t, models.CellRow{R: 3, C: map[string]interface{}{
		"Date":   "2025-01-14",
		"2":      "x",
		"Amount": 100.25,
	}}, got[0])
	assert.Equal(t, models.CellRow{R: 5, C: map[string]interface{}{"Amount": int64(7)}}, got[1])
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
