package main

import (
	"strconv"

	"gridBook/contracts"
)

// Evaluator errors are per-cell copy, surfaced next to the (read-only)
// computed cell with an empty displayed value.
const (
	ComputedErrMissingSpec      = "Missing computed spec"
	ComputedErrSelectInputs     = "Select input columns"
	ComputedErrInputsNotNumbers = "Inputs must be numbers"
	ComputedErrInputsNotDates   = "Inputs must be dates"
	ComputedErrDivideByZero     = "Divide by zero"
	ComputedErrUnknownOperation = "Unknown computed operation"
)

const daysPerYear = 365.25

type ComputedColumnEvaluator struct {
	parser *ValueParser
}

func NewComputedColumnEvaluator(parser *ValueParser) *ComputedColumnEvaluator {
	return &ComputedColumnEvaluator{parser: parser}
}

// Evaluate derives the computed value from the sibling raw values of one
// row. Inputs are looked up by column id, so reordering or renaming sibling
// columns never breaks a spec; a removed id resolves to the empty string
// and fails the per-operation parse below.
func (e *ComputedColumnEvaluator) Evaluate(column *contracts.Column, row contracts.RowValues) contracts.ComputedResult {
	spec := column.Computed
	if spec == nil {
		return contracts.ComputedResult{Error: ComputedErrMissingSpec}
	}

	if spec.InputColumnIds[0] == "" || spec.InputColumnIds[1] == "" {
		return contracts.ComputedResult{Error: ComputedErrSelectInputs}
	}

	first := row[spec.InputColumnIds[0]]
	second := row[spec.InputColumnIds[1]]

	switch spec.Operation {
	case contracts.OperationDivide:
		return e.divide(first, second)
	case contracts.OperationSubtract:
		return e.subtract(first, second)
	case contracts.OperationDateDiffYears:
		return e.dateDiffYears(first, second)
	}

	return contracts.ComputedResult{Error: ComputedErrUnknownOperation}
}

func (e *ComputedColumnEvaluator) divide(first string, second string) contracts.ComputedResult {
	dividend, firstOk := e.parser.Number(first)
	divisor, secondOk := e.parser.Number(second)
	if !firstOk || !secondOk {
		return contracts.ComputedResult{Error: ComputedErrInputsNotNumbers}
	}

	if divisor == 0 {
		return contracts.ComputedResult{Error: ComputedErrDivideByZero}
	}

	// Exact division; rounding is a display concern.
	return contracts.ComputedResult{Value: formatComputedNumber(dividend / divisor)}
}

func (e *ComputedColumnEvaluator) subtract(first string, second string) contracts.ComputedResult {
	minuend, firstOk := e.parser.Number(first)
	subtrahend, secondOk := e.parser.Number(second)
	if !firstOk || !secondOk {
		return contracts.ComputedResult{Error: ComputedErrInputsNotNumbers}
	}

	return contracts.ComputedResult{Value: formatComputedNumber(minuend - subtrahend)}
}

func (e *ComputedColumnEvaluator) dateDiffYears(first string, second string) contracts.ComputedResult {
	start, firstOk := e.parser.Date(first)
	end, secondOk := e.parser.Date(second)
	if !firstOk || !secondOk {
		return contracts.ComputedResult{Error: ComputedErrInputsNotDates}
	}

	days := end.Sub(start).Hours() / 24
	return contracts.ComputedResult{Value: formatComputedNumber(days / daysPerYear)}
}

func formatComputedNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
