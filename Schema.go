package main

import (
	"fmt"

	"github.com/google/uuid"

	"gridBook/contracts"
)

// NewColumnId returns a stable id for a freshly created column. Ids are
// immutable once a computed spec references them, so they are never derived
// from the mutable display name.
func NewColumnId() string {
	return uuid.NewString()
}

// ApplyColumnType switches a column to a new type. A type change is a full
// re-initialization of the type-dependent fields, not a partial patch: enum
// options survive only on enum columns, computed specs only on computed
// columns, and format options reset to the new type's defaults. Computed
// columns force Required to false since they are never user-edited.
func ApplyColumnType(column *contracts.Column, newType contracts.ColumnType) {
	column.Type = newType
	column.Format = contracts.FormatOptions{}

	if newType != contracts.ColumnEnum {
		column.EnumValues = nil
	}

	if newType == contracts.ColumnComputed {
		column.Required = false
		if column.Computed == nil {
			column.Computed = &contracts.ComputedSpec{}
		}
	} else {
		column.Computed = nil
	}
}

// NormalizeColumn fills in what a caller-supplied column definition may
// omit: a generated id, a type defaulting to untyped, and the type-field
// invariants of ApplyColumnType.
func NormalizeColumn(column *contracts.Column) {
	if column.Id == "" {
		column.Id = NewColumnId()
	}
	if column.Type == "" {
		column.Type = contracts.ColumnUntyped
	}

	format := column.Format
	computed := column.Computed
	enumValues := column.EnumValues
	ApplyColumnType(column, column.Type)

	// Keep the caller's fields where they apply to the declared type.
	column.Format = format
	if column.Type == contracts.ColumnEnum {
		column.EnumValues = enumValues
	}
	if column.Type == contracts.ColumnComputed && computed != nil {
		column.Computed = computed
	}
}

func validateFormatOptions(format contracts.FormatOptions) error {
	if format.Decimals != nil && (*format.Decimals < 0 || *format.Decimals > contracts.MaxDecimals) {
		return fmt.Errorf("%d: %w", *format.Decimals, contracts.DecimalsRangeError)
	}
	if format.DateDisplayFormat != "" &&
		format.DateDisplayFormat != contracts.DateDisplayIso &&
		format.DateDisplayFormat != contracts.DateDisplayMdy {
		return fmt.Errorf("%s: %w", format.DateDisplayFormat, contracts.DateDisplayFormatError)
	}
	return nil
}

// FindColumn returns the position of a column id, or -1.
func FindColumn(columns []contracts.Column, columnId string) int {
	for position, column := range columns {
		if column.Id == columnId {
			return position
		}
	}
	return -1
}

// CloneColumns deep-copies the schema so snapshot mutations stay isolated.
func CloneColumns(columns []contracts.Column) []contracts.Column {
	cloned := make([]contracts.Column, len(columns))
	copy(cloned, columns)

	for index := range cloned {
		if cloned[index].EnumValues != nil {
			enumValues := make([]string, len(cloned[index].EnumValues))
			copy(enumValues, cloned[index].EnumValues)
			cloned[index].EnumValues = enumValues
		}
		if cloned[index].Computed != nil {
			computed := *cloned[index].Computed
			cloned[index].Computed = &computed
		}
		if cloned[index].Format.Decimals != nil {
			decimals := *cloned[index].Format.Decimals
			cloned[index].Format.Decimals = &decimals
		}
	}

	return cloned
}

// RowValuesAt zips one matrix row with the column list in order into the
// id-keyed mapping the evaluator reads. Removed columns simply have no key,
// so a stale computed reference resolves to the empty string.
func RowValuesAt(columns []contracts.Column, cells [][]string, row int) contracts.RowValues {
	values := make(contracts.RowValues, len(columns))
	for position, column := range columns {
		values[column.Id] = CellAt(cells, row, position)
	}
	return values
}
