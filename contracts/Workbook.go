package contracts

import "errors"

// Workbook is one immutable state snapshot: the ordered schema plus the
// rectangular raw-string cell matrix. Cells is always RowCount rows of
// len(Columns) strings; computed columns occupy a position whose stored
// value stays empty (their value is derived on read, never persisted).
type Workbook struct {
	Columns  []Column   `json:"columns"`
	Cells    [][]string `json:"cells"`
	RowCount int        `json:"rowCount"`
}

// RowValues maps column id to the raw value of one matrix row. Lookup of a
// missing id yields the empty string, which is what a computed spec
// referencing a removed column resolves to.
type RowValues map[string]string

type ValidationResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func ValidResult() ValidationResult {
	return ValidationResult{Valid: true}
}

func InvalidResult(reason string) ValidationResult {
	return ValidationResult{Valid: false, Reason: reason}
}

type ComputedResult struct {
	Value string `json:"value"`
	Error string `json:"error,omitempty"`
}

// GridCell is the evaluated view of one cell: the display value plus the
// advisory validation or computation verdict.
type GridCell struct {
	Value    string `json:"value"`
	Invalid  string `json:"invalid,omitempty"`
	Error    string `json:"error,omitempty"`
	ReadOnly bool   `json:"readOnly,omitempty"`
}

type Grid struct {
	Columns  []Column     `json:"columns"`
	Rows     [][]GridCell `json:"rows"`
	RowCount int          `json:"rowCount"`
}

// CellCommit is the outcome of committing one cell edit: the value as
// typed, the canonical form actually stored, and the advisory verdict.
type CellCommit struct {
	Raw        string           `json:"raw"`
	Canonical  string           `json:"canonical"`
	Validation ValidationResult `json:"validation"`
}

var CellOutOfRangeError = errors.New("cell position out of range")

var RowCountRangeError = errors.New("row count must not be negative")

var ComputedCellReadOnlyError = errors.New("computed cells are read-only")
