package main

import (
	"strconv"

	"gridBook/contracts"
)

// CellFormatter re-renders committed cell values into their canonical
// display form. Unparsable input is always returned unchanged so a typo is
// never silently destroyed, and the canonical form of any value parses back
// to itself (Canonicalize is idempotent).
type CellFormatter struct {
	parser *ValueParser
}

func NewCellFormatter(parser *ValueParser) *CellFormatter {
	return &CellFormatter{parser: parser}
}

func (f *CellFormatter) Canonicalize(column *contracts.Column, rawValue string) string {
	switch column.Type {
	case contracts.ColumnNumber, contracts.ColumnCurrency:
		return f.formatNumber(column, rawValue, "")

	case contracts.ColumnPercent:
		return f.formatNumber(column, rawValue, "%")

	case contracts.ColumnDate:
		return f.formatDate(column, rawValue)
	}

	// text, enum, untyped; computed cells are never user-edited.
	return rawValue
}

func (f *CellFormatter) formatNumber(column *contracts.Column, rawValue string, suffix string) string {
	value, ok := f.parser.Number(rawValue)
	if !ok {
		return rawValue
	}

	return strconv.FormatFloat(value, 'f', column.Format.DecimalsOrDefault(), 64) + suffix
}

func (f *CellFormatter) formatDate(column *contracts.Column, rawValue string) string {
	parsed, ok := f.parser.Date(rawValue)
	if !ok {
		return rawValue
	}

	if column.Format.DateDisplayOrDefault() == contracts.DateDisplayMdy {
		return strconv.Itoa(int(parsed.Month())) +
			"/" + strconv.Itoa(parsed.Day()) +
			"/" + strconv.Itoa(parsed.Year())
	}

	return parsed.Format("2006-01-02")
}
