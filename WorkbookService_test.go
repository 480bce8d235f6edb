package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gridBook/contracts"
	"gridBook/mocks"
)

func _testWorkbook() *contracts.Workbook {
	zero := 0
	columns := []contracts.Column{
		{Id: "name", Name: "Name", Type: contracts.ColumnText, Required: true},
		{Id: "price", Name: "Price", Type: contracts.ColumnCurrency},
		{Id: "qty", Name: "Qty", Type: contracts.ColumnNumber, Format: contracts.FormatOptions{Decimals: &zero}},
		{Id: "unit", Name: "Unit price", Type: contracts.ColumnComputed, Computed: &contracts.ComputedSpec{
			Operation:      contracts.OperationDivide,
			InputColumnIds: [2]string{"price", "qty"},
		}},
	}

	return &contracts.Workbook{
		Columns: columns,
		Cells: [][]string{
			{"Widget", "10.00", "4", ""},
			{"Gadget", "9.00", "0", ""},
			{"", "", "", ""},
		},
		RowCount: 3,
	}
}

func _buildService(t *testing.T, initial *contracts.Workbook) (*WorkbookStateService, *mocks.WorkbookRepository, *mocks.StateDispatcher) {
	repository := mocks.NewWorkbookRepository(t)
	dispatcher := mocks.NewStateDispatcher(t)

	if initial != nil {
		repository.On("Load", "book1").Return(initial).Once()
	}

	parser := NewValueParser()
	service := NewWorkbookStateService(
		repository,
		dispatcher,
		NewCellValidator(parser),
		NewCellFormatter(parser),
		NewComputedColumnEvaluator(parser),
		StaticSchemaSuggester,
	)

	return service, repository, dispatcher
}

func _expectSettle(repository *mocks.WorkbookRepository, dispatcher *mocks.StateDispatcher) {
	repository.On("Save", "book1", mock.Anything).Return(nil)
	dispatcher.On("Notify", "book1", mock.Anything).Return()
}

func TestWorkbookStateService_SetCell(t *testing.T) {
	t.Run("canonicalizes on commit and settles", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())

		var persisted *contracts.Workbook
		repository.On("Save", "book1", mock.Anything).
			Run(func(args mock.Arguments) {
				persisted = args.Get(1).(*contracts.Workbook)
			}).
			Return(nil)
		dispatcher.On("Notify", "book1", mock.Anything).Return()

		commit, err := service.SetCell("book1", 2, 1, "$1,234.5")

		assert.NoError(t, err)
		assert.Equal(t, "$1,234.5", commit.Raw)
		assert.Equal(t, "1234.50", commit.Canonical)
		assert.True(t, commit.Validation.Valid)

		assert.Equal(t, "1234.50", CellAt(service.Get("book1").Cells, 2, 1))
		assert.NotNil(t, persisted)
		assert.Equal(t, "1234.50", CellAt(persisted.Cells, 2, 1))
	})

	t.Run("invalid value is stored with an advisory verdict", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		commit, err := service.SetCell("book1", 0, 2, "many")

		assert.NoError(t, err)
		assert.Equal(t, "many", commit.Canonical)
		assert.False(t, commit.Validation.Valid)
		assert.Equal(t, ReasonNotNumber, commit.Validation.Reason)

		assert.Equal(t, "many", CellAt(service.Get("book1").Cells, 0, 2))
	})

	t.Run("does not mutate the previous snapshot", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		before := service.Get("book1")
		_, err := service.SetCell("book1", 0, 0, "Renamed")

		assert.NoError(t, err)
		assert.Equal(t, "Widget", CellAt(before.Cells, 0, 0))
	})

	t.Run("out of range", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		_, err := service.SetCell("book1", 3, 0, "x")
		assert.ErrorIs(t, err, contracts.CellOutOfRangeError)

		_, err = service.SetCell("book1", 0, 9, "x")
		assert.ErrorIs(t, err, contracts.CellOutOfRangeError)
	})

	t.Run("computed cells are read-only", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		_, err := service.SetCell("book1", 0, 3, "42")
		assert.ErrorIs(t, err, contracts.ComputedCellReadOnlyError)
	})

	t.Run("persist failure does not fail the edit", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		repository.On("Save", "book1", mock.Anything).Return(errors.New("disk full"))
		dispatcher.On("Notify", "book1", mock.Anything).Return()

		_, err := service.SetCell("book1", 0, 0, "Still works")

		assert.NoError(t, err)
		assert.Equal(t, "Still works", CellAt(service.Get("book1").Cells, 0, 0))
	})
}

func TestWorkbookStateService_Columns(t *testing.T) {
	t.Run("add column reshapes every row", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		created, err := service.AddColumn("book1", contracts.Column{Name: "Notes", Type: contracts.ColumnText})

		assert.NoError(t, err)
		assert.NotEmpty(t, created.Id)

		snapshot := service.Get("book1")
		assert.Len(t, snapshot.Columns, 5)
		for _, row := range snapshot.Cells {
			assert.Len(t, row, 5)
			assert.Equal(t, "", row[4])
		}
	})

	t.Run("add column rejects unknown type", func(t *testing.T) {
		service, _, _ := _buildService(t, nil)

		_, err := service.AddColumn("book1", contracts.Column{Name: "Bad", Type: "fancy"})
		assert.ErrorIs(t, err, contracts.UnknownColumnTypeError)
	})

	t.Run("add column rejects out-of-range decimals", func(t *testing.T) {
		service, _, _ := _buildService(t, nil)

		nine := 9
		_, err := service.AddColumn("book1", contracts.Column{
			Name:   "Bad",
			Type:   contracts.ColumnNumber,
			Format: contracts.FormatOptions{Decimals: &nine},
		})
		assert.ErrorIs(t, err, contracts.DecimalsRangeError)
	})

	t.Run("type change is a full re-initialization", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		enumValues := []string{"USD", "EUR"}
		enumType := contracts.ColumnEnum
		updated, err := service.UpdateColumn("book1", "price", contracts.ColumnPatch{
			Type:       &enumType,
			EnumValues: enumValues,
		})

		assert.NoError(t, err)
		assert.Equal(t, contracts.ColumnEnum, updated.Type)
		assert.Equal(t, enumValues, updated.EnumValues)

		numberType := contracts.ColumnNumber
		updated, err = service.UpdateColumn("book1", "price", contracts.ColumnPatch{Type: &numberType})

		assert.NoError(t, err)
		assert.Equal(t, contracts.ColumnNumber, updated.Type)
		assert.Nil(t, updated.EnumValues)
	})

	t.Run("required is forced false on computed columns", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		required := true
		updated, err := service.UpdateColumn("book1", "unit", contracts.ColumnPatch{Required: &required})

		assert.NoError(t, err)
		assert.False(t, updated.Required)
	})

	t.Run("update missing column", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		name := "X"
		_, err := service.UpdateColumn("book1", "ghost", contracts.ColumnPatch{Name: &name})
		assert.ErrorIs(t, err, contracts.ColumnNotFoundError)
	})

	t.Run("remove column shifts later positions", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		err := service.RemoveColumn("book1", "price")

		assert.NoError(t, err)

		snapshot := service.Get("book1")
		assert.Len(t, snapshot.Columns, 3)
		assert.Equal(t, []string{"Widget", "4", ""}, snapshot.Cells[0])
	})

	t.Run("remove missing column", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		assert.ErrorIs(t, service.RemoveColumn("book1", "ghost"), contracts.ColumnNotFoundError)
	})

	t.Run("computed spec referencing a removed column errors on read", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		assert.NoError(t, service.RemoveColumn("book1", "price"))

		grid := service.GetGrid("book1")
		unitPosition := FindColumn(service.Get("book1").Columns, "unit")
		cell := grid.Rows[0][unitPosition]

		assert.Equal(t, "", cell.Value)
		assert.Equal(t, ComputedErrInputsNotNumbers, cell.Error)
	})
}

func TestWorkbookStateService_Rows(t *testing.T) {
	t.Run("grow preserves prefix rows", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		assert.NoError(t, service.SetRowCount("book1", 5))

		snapshot := service.Get("book1")
		assert.Equal(t, 5, snapshot.RowCount)
		assert.Len(t, snapshot.Cells, 5)
		assert.Equal(t, "Widget", CellAt(snapshot.Cells, 0, 0))
		assert.Equal(t, []string{"", "", "", ""}, snapshot.Cells[4])
	})

	t.Run("shrink drops suffix rows", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		assert.NoError(t, service.SetRowCount("book1", 1))

		snapshot := service.Get("book1")
		assert.Equal(t, 1, snapshot.RowCount)
		assert.Len(t, snapshot.Cells, 1)
	})

	t.Run("negative row count", func(t *testing.T) {
		service, _, _ := _buildService(t, nil)

		assert.ErrorIs(t, service.SetRowCount("book1", -1), contracts.RowCountRangeError)
	})
}

func TestWorkbookStateService_FillDown(t *testing.T) {
	t.Run("fills empty cells below the source", func(t *testing.T) {
		service, repository, dispatcher := _buildService(t, _testWorkbook())
		_expectSettle(repository, dispatcher)

		filled, err := service.FillDown("book1", 1, 1)

		assert.NoError(t, err)
		assert.Equal(t, 1, filled)

		snapshot := service.Get("book1")
		assert.Equal(t, "9.00", CellAt(snapshot.Cells, 2, 1))
		assert.Equal(t, "10.00", CellAt(snapshot.Cells, 0, 1))
	})

	t.Run("stops at the first non-empty cell", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		// row 1 already holds a price, so filling from row 0 fills nothing
		filled, err := service.FillDown("book1", 0, 1)

		assert.NoError(t, err)
		assert.Equal(t, 0, filled)
	})

	t.Run("empty source is a no-op and does not settle", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		filled, err := service.FillDown("book1", 2, 0)

		assert.NoError(t, err)
		assert.Equal(t, 0, filled)
	})

	t.Run("out of range", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		_, err := service.FillDown("book1", 9, 0)
		assert.ErrorIs(t, err, contracts.CellOutOfRangeError)
	})
}

func TestWorkbookStateService_Reads(t *testing.T) {
	t.Run("grid evaluates computed cells live", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		grid := service.GetGrid("book1")

		assert.Equal(t, 3, grid.RowCount)

		unit := grid.Rows[0][3]
		assert.True(t, unit.ReadOnly)
		assert.Equal(t, "2.5", unit.Value)
		assert.Empty(t, unit.Error)

		divByZero := grid.Rows[1][3]
		assert.Equal(t, "", divByZero.Value)
		assert.Equal(t, ComputedErrDivideByZero, divByZero.Error)
	})

	t.Run("grid carries advisory validation verdicts", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		grid := service.GetGrid("book1")

		// required name missing on the empty row
		assert.Equal(t, ReasonRequired, grid.Rows[2][0].Invalid)
		assert.Empty(t, grid.Rows[0][0].Invalid)
	})

	t.Run("export is row-major with live computed values", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		rows := service.Export("book1")

		assert.Len(t, rows, 3)
		assert.Equal(t, contracts.RowValues{
			"name":  "Widget",
			"price": "10.00",
			"qty":   "4",
			"unit":  "2.5",
		}, rows[0])

		// computed error exports as empty, not stale
		assert.Equal(t, "", rows[1]["unit"])
	})

	t.Run("snapshot is loaded once and cached", func(t *testing.T) {
		service, _, _ := _buildService(t, _testWorkbook())

		first := service.Get("book1")
		second := service.Get("Book1")

		assert.Same(t, first, second)
	})
}

func TestWorkbookStateService_RegenerateSchema(t *testing.T) {
	service, repository, dispatcher := _buildService(t, _testWorkbook())
	_expectSettle(repository, dispatcher)

	snapshot, err := service.RegenerateSchema("book1", "Track our team budget")

	assert.NoError(t, err)
	assert.Equal(t, 3, snapshot.RowCount)

	ids := make([]string, len(snapshot.Columns))
	for index, column := range snapshot.Columns {
		ids[index] = column.Id
	}
	assert.Equal(t, []string{"item", "planned", "actual", "variance"}, ids)

	// wholesale replacement starts blank
	for _, row := range snapshot.Cells {
		assert.Equal(t, []string{"", "", "", ""}, row)
	}

	assert.Same(t, snapshot, service.Get("book1"))
}
