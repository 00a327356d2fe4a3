package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/boost-qa/sheetcheck/internal/testkit"
	"github.com/boost-qa/sheetcheck/pkg/sheetcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batchWorkbook(t *testing.T) string {
	t.Helper()
	return testkit.WriteWorkbook(t, "batch.xlsx", testkit.Sheet{
		Name: "Transactions",
		Rows: []testkit.Row{
			testkit.PlainRow("PNC payment file"),
			testkit.BoldRow("Date", "Account Number", "Invoice Amount", "", "Total Amount"),
			testkit.PlainRow("2025-01-14", "ACC-1", 100, "", 250),
		},
	})
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "disabled")
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&nopWriter{})
	cmd.SetErr(&nopWriter{})
	return cmd.Execute()
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestHeadersCommand(t *testing.T) {
	input := batchWorkbook(t)
	out := filepath.Join(t.TempDir(), "headers.json")

	require.NoError(t, execute(t, "headers", input, "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var wb models.WorkbookHeaders
	require.NoError(t, json.Unmarshal(data, &wb))
	assert.Equal(t, models.HeaderMap{
		"Transactions": {"Date", "Account Number", "Invoice Amount", "", "Total Amount"},
	}, wb.Map())
}

func TestValueCommand(t *testing.T) {
	input := batchWorkbook(t)
	out := filepath.Join(t.TempDir(), "value.txt")

	require.NoError(t, execute(t, "value", input, "--sheet", "Transactions", "--column", "total amount", "-o", out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "250\n", string(data))
}

func TestValidateCommand(t *testing.T) {
	input := batchWorkbook(t)

	assert.NoError(t, execute(t, "validate", input, "--sheet", "Transactions", "--expect", "Date,Total Amount"))

	err := execute(t, "validate", input, "--sheet", "Transactions", "--expect", "Date,Payer Name")
	assert.ErrorIs(t, err, errValidation)
}

func TestFileNotFound(t *testing.T) {
	err := execute(t, "headers", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestInvalidEnvironment(t *testing.T) {
	err := execute(t, "headers", batchWorkbook(t), "--env", "STAGING")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}
