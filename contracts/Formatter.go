package contracts

type Formatter interface {
	// Canonicalize re-renders a raw value into the column's display form.
	// It is idempotent and returns unparsable input unchanged.
	Canonicalize(column *Column, rawValue string) string
}
