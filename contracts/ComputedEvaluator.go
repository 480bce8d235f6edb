package contracts

type ComputedEvaluator interface {
	// Evaluate derives a computed column's value from the sibling raw
	// values of one row, keyed by column id. Called on every read; results
	// are never persisted. On error the value is empty and Error carries
	// the reason.
	Evaluate(column *Column, row RowValues) ComputedResult
}
