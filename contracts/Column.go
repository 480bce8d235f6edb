package contracts

import (
	"errors"
	"fmt"
	"strings"
)

type ColumnType string

const (
	ColumnUntyped  ColumnType = "untyped"
	ColumnText     ColumnType = "text"
	ColumnNumber   ColumnType = "number"
	ColumnCurrency ColumnType = "currency"
	ColumnPercent  ColumnType = "percent"
	ColumnDate     ColumnType = "date"
	ColumnEnum     ColumnType = "enum"
	ColumnComputed ColumnType = "computed"
)

var ColumnTypes = []ColumnType{
	ColumnUntyped, ColumnText, ColumnNumber, ColumnCurrency,
	ColumnPercent, ColumnDate, ColumnEnum, ColumnComputed,
}

type ComputedOperation string

const (
	OperationDivide        ComputedOperation = "divide"
	OperationSubtract      ComputedOperation = "subtract"
	OperationDateDiffYears ComputedOperation = "date_diff_years"
)

type DateDisplayFormat string

const (
	DateDisplayIso DateDisplayFormat = "iso"
	DateDisplayMdy DateDisplayFormat = "mdy"
)

const DefaultDecimals = 2

const MaxDecimals = 8

type ComputedSpec struct {
	Operation      ComputedOperation `json:"operation"`
	InputColumnIds [2]string         `json:"inputColumnIds"`
}

type FormatOptions struct {
	// Decimals applies to number, currency and percent columns. Nil means
	// DefaultDecimals.
	Decimals *int `json:"decimals,omitempty"`

	// DateDisplayFormat applies to date columns. Empty means iso.
	DateDisplayFormat DateDisplayFormat `json:"dateDisplayFormat,omitempty"`
}

func (f FormatOptions) DecimalsOrDefault() int {
	if f.Decimals == nil || *f.Decimals < 0 || *f.Decimals > MaxDecimals {
		return DefaultDecimals
	}
	return *f.Decimals
}

func (f FormatOptions) DateDisplayOrDefault() DateDisplayFormat {
	if f.DateDisplayFormat == DateDisplayMdy {
		return DateDisplayMdy
	}
	return DateDisplayIso
}

type Column struct {
	Id          string        `json:"id"`
	Name        string        `json:"name"`
	Type        ColumnType    `json:"type"`
	Required    bool          `json:"required"`
	Description string        `json:"description,omitempty"`
	EnumValues  []string      `json:"enumValues,omitempty"`
	Computed    *ComputedSpec `json:"computedSpec,omitempty"`
	Format      FormatOptions `json:"formatOptions"`
}

// ColumnPatch carries a partial column update. Nil fields keep the current
// value; a non-nil Type triggers the full type-change re-initialization.
type ColumnPatch struct {
	Name        *string        `json:"name,omitempty"`
	Type        *ColumnType    `json:"type,omitempty"`
	Required    *bool          `json:"required,omitempty"`
	Description *string        `json:"description,omitempty"`
	EnumValues  []string       `json:"enumValues,omitempty"`
	Computed    *ComputedSpec  `json:"computedSpec,omitempty"`
	Format      *FormatOptions `json:"formatOptions,omitempty"`
}

var ColumnNotFoundError = errors.New("column not found")

var UnknownColumnTypeError = fmt.Errorf("column type must be one of: %s", joinColumnTypes())

func joinColumnTypes() string {
	names := make([]string, len(ColumnTypes))
	for index, columnType := range ColumnTypes {
		names[index] = string(columnType)
	}
	return strings.Join(names, ", ")
}

var DecimalsRangeError = fmt.Errorf("decimals must be between 0 and %d", MaxDecimals)

var DateDisplayFormatError = errors.New("dateDisplayFormat must be iso or mdy")

func IsKnownColumnType(columnType ColumnType) bool {
	for _, known := range ColumnTypes {
		if known == columnType {
			return true
		}
	}
	return false
}
