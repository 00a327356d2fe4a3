package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrHeaderNotFound indicates no row of a sheet qualifies as a header.
var ErrHeaderNotFound = errors.New("header row not found")

// ErrNoDateColumn indicates a transactions header has no date column.
var ErrNoDateColumn = errors.New("no date column found")

// MissingColumnsError lists required columns absent from a header.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing columns: [%s], available columns: [%s]",
		strings.Join(e.Missing, ", "), strings.Join(e.Available, ", "))
}
