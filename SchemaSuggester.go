package main

import (
	"strings"

	"gridBook/contracts"
)

// StaticSchemaSuggester is the shipping stand-in for schema inference: a
// case-insensitive keyword lookup over a canned catalog, with a generic
// fallback. Real inference plugs in behind contracts.SchemaSuggester; this
// stub only has to honor the same contract.
func StaticSchemaSuggester(purposeText string) []contracts.Column {
	purpose := strings.ToLower(purposeText)

	switch {
	case containsAny(purpose, "budget", "expense", "spend"):
		return budgetColumns()
	case containsAny(purpose, "invoice", "billing", "order"):
		return invoiceColumns()
	case containsAny(purpose, "project", "task", "milestone"):
		return projectColumns()
	case containsAny(purpose, "team", "people", "employee", "staff"):
		return teamColumns()
	}

	return fallbackColumns()
}

func containsAny(purpose string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(purpose, keyword) {
			return true
		}
	}
	return false
}

// Catalog column ids are fixed slugs, not generated uuids, so the canned
// computed specs can name their input columns.

func budgetColumns() []contracts.Column {
	return []contracts.Column{
		{Id: "item", Name: "Item", Type: contracts.ColumnText, Required: true},
		{Id: "planned", Name: "Planned", Type: contracts.ColumnCurrency},
		{Id: "actual", Name: "Actual", Type: contracts.ColumnCurrency},
		{Id: "variance", Name: "Variance", Type: contracts.ColumnComputed, Computed: &contracts.ComputedSpec{
			Operation:      contracts.OperationSubtract,
			InputColumnIds: [2]string{"planned", "actual"},
		}},
	}
}

func invoiceColumns() []contracts.Column {
	return []contracts.Column{
		{Id: "description", Name: "Description", Type: contracts.ColumnText, Required: true},
		{Id: "quantity", Name: "Quantity", Type: contracts.ColumnNumber, Format: contracts.FormatOptions{Decimals: decimals(0)}},
		{Id: "total", Name: "Total", Type: contracts.ColumnCurrency},
		{Id: "unit_price", Name: "Unit price", Type: contracts.ColumnComputed, Computed: &contracts.ComputedSpec{
			Operation:      contracts.OperationDivide,
			InputColumnIds: [2]string{"total", "quantity"},
		}},
	}
}

func projectColumns() []contracts.Column {
	return []contracts.Column{
		{Id: "task", Name: "Task", Type: contracts.ColumnText, Required: true},
		{Id: "status", Name: "Status", Type: contracts.ColumnEnum, EnumValues: []string{"Not started", "In progress", "Done"}},
		{Id: "start", Name: "Start", Type: contracts.ColumnDate},
		{Id: "due", Name: "Due", Type: contracts.ColumnDate},
		{Id: "duration_years", Name: "Duration (years)", Type: contracts.ColumnComputed, Computed: &contracts.ComputedSpec{
			Operation:      contracts.OperationDateDiffYears,
			InputColumnIds: [2]string{"start", "due"},
		}},
	}
}

func teamColumns() []contracts.Column {
	return []contracts.Column{
		{Id: "name", Name: "Name", Type: contracts.ColumnText, Required: true},
		{Id: "role", Name: "Role", Type: contracts.ColumnText},
		{Id: "joined", Name: "Joined", Type: contracts.ColumnDate, Format: contracts.FormatOptions{DateDisplayFormat: contracts.DateDisplayMdy}},
		{Id: "reviewed", Name: "Last review", Type: contracts.ColumnDate, Format: contracts.FormatOptions{DateDisplayFormat: contracts.DateDisplayMdy}},
		{Id: "tenure_years", Name: "Tenure (years)", Type: contracts.ColumnComputed, Computed: &contracts.ComputedSpec{
			Operation:      contracts.OperationDateDiffYears,
			InputColumnIds: [2]string{"joined", "reviewed"},
		}},
		{Id: "allocation", Name: "Allocation", Type: contracts.ColumnPercent, Format: contracts.FormatOptions{Decimals: decimals(0)}},
	}
}

func fallbackColumns() []contracts.Column {
	return []contracts.Column{
		{Id: "name", Name: "Name", Type: contracts.ColumnText, Required: true},
		{Id: "value", Name: "Value", Type: contracts.ColumnNumber},
		{Id: "notes", Name: "Notes", Type: contracts.ColumnUntyped},
	}
}

func decimals(count int) *int {
	return &count
}
