package contracts

type Validator interface {
	// Validate is a pure verdict on a raw cell value under a column
	// definition. Untyped and computed columns are always valid; computed
	// columns carry their own error channel on the evaluator side.
	Validate(column *Column, rawValue string) ValidationResult
}
