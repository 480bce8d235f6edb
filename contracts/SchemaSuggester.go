package contracts

// SchemaSuggester maps a free-text workbook purpose to a column list. The
// shipping implementation is a static lookup; real inference is explicitly
// out of scope and plugs in behind this same contract.
type SchemaSuggester func(purposeText string) []Column
