package main

import (
	"strings"

	"gridBook/contracts"
)

// Validation reasons are product copy rendered next to the cell, so they
// are short imperative phrases rather than error values.
const (
	ReasonRequired     = "Required"
	ReasonNotNumber    = "Must be a number"
	ReasonNotCurrency  = "Must be a currency amount"
	ReasonPercentRange = "Percent looks off"
	ReasonInvalidDate  = "Invalid date"
	ReasonEnumEmpty    = "Enum has no options"
	ReasonEnumPrefix   = "Must be one of: "
)

// Percent values are accepted as raw percentages (525 meaning 525%), hence
// the wide bounds.
const (
	PercentLowerBound = -100
	PercentUpperBound = 1000
)

type CellValidator struct {
	parser *ValueParser
}

func NewCellValidator(parser *ValueParser) *CellValidator {
	return &CellValidator{parser: parser}
}

func (v *CellValidator) Validate(column *contracts.Column, rawValue string) contracts.ValidationResult {
	// Computed cells are never user-edited; their failures travel on the
	// evaluator's error channel instead.
	if column.Type == contracts.ColumnUntyped || column.Type == contracts.ColumnComputed {
		return contracts.ValidResult()
	}

	trimmed := strings.TrimSpace(rawValue)
	if trimmed == "" {
		if column.Required {
			return contracts.InvalidResult(ReasonRequired)
		}
		return contracts.ValidResult()
	}

	switch column.Type {
	case contracts.ColumnText:
		return contracts.ValidResult()

	case contracts.ColumnNumber:
		if _, ok := v.parser.Number(trimmed); !ok {
			return contracts.InvalidResult(ReasonNotNumber)
		}
		return contracts.ValidResult()

	case contracts.ColumnCurrency:
		if _, ok := v.parser.Number(trimmed); !ok {
			return contracts.InvalidResult(ReasonNotCurrency)
		}
		return contracts.ValidResult()

	case contracts.ColumnPercent:
		value, ok := v.parser.Number(trimmed)
		if !ok {
			return contracts.InvalidResult(ReasonNotNumber)
		}
		if value < PercentLowerBound || value > PercentUpperBound {
			return contracts.InvalidResult(ReasonPercentRange)
		}
		return contracts.ValidResult()

	case contracts.ColumnDate:
		if _, ok := v.parser.Date(trimmed); !ok {
			return contracts.InvalidResult(ReasonInvalidDate)
		}
		return contracts.ValidResult()

	case contracts.ColumnEnum:
		if len(column.EnumValues) == 0 {
			return contracts.InvalidResult(ReasonEnumEmpty)
		}
		for _, allowed := range column.EnumValues {
			if trimmed == allowed {
				return contracts.ValidResult()
			}
		}
		return contracts.InvalidResult(ReasonEnumPrefix + strings.Join(column.EnumValues, ", "))
	}

	return contracts.ValidResult()
}
