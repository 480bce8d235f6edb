package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gridBook/contracts"
)

// WorkbookStateService owns the live workbook snapshots. Every mutation
// takes the lock, builds a brand-new Workbook value from the current one
// and settles it: the snapshot map is swapped, the repository persists it
// and the dispatcher is notified. Reads hand out the settled snapshot, so
// derived state always reflects the most recently committed edit.
type WorkbookStateService struct {
	mu        sync.Mutex
	snapshots map[string]*contracts.Workbook

	repository contracts.WorkbookRepository
	dispatcher contracts.StateDispatcher
	validator  contracts.Validator
	formatter  contracts.Formatter
	evaluator  contracts.ComputedEvaluator
	suggester  contracts.SchemaSuggester
}

func NewWorkbookStateService(
	repository contracts.WorkbookRepository,
	dispatcher contracts.StateDispatcher,
	validator contracts.Validator,
	formatter contracts.Formatter,
	evaluator contracts.ComputedEvaluator,
	suggester contracts.SchemaSuggester,
) *WorkbookStateService {
	return &WorkbookStateService{
		snapshots:  map[string]*contracts.Workbook{},
		repository: repository,
		dispatcher: dispatcher,
		validator:  validator,
		formatter:  formatter,
		evaluator:  evaluator,
		suggester:  suggester,
	}
}

func (s *WorkbookStateService) Get(workbookId string) *contracts.Workbook {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(workbookId)
}

func (s *WorkbookStateService) GetGrid(workbookId string) *contracts.Grid {
	s.mu.Lock()
	snapshot := s.snapshot(workbookId)
	s.mu.Unlock()

	grid := &contracts.Grid{
		Columns:  snapshot.Columns,
		Rows:     make([][]contracts.GridCell, snapshot.RowCount),
		RowCount: snapshot.RowCount,
	}

	for row := 0; row < snapshot.RowCount; row++ {
		values := RowValuesAt(snapshot.Columns, snapshot.Cells, row)
		grid.Rows[row] = make([]contracts.GridCell, len(snapshot.Columns))

		for position := range snapshot.Columns {
			column := &snapshot.Columns[position]

			if column.Type == contracts.ColumnComputed {
				result := s.evaluator.Evaluate(column, values)
				grid.Rows[row][position] = contracts.GridCell{
					Value:    result.Value,
					Error:    result.Error,
					ReadOnly: true,
				}
				continue
			}

			raw := CellAt(snapshot.Cells, row, position)
			cell := contracts.GridCell{Value: raw}
			if verdict := s.validator.Validate(column, raw); !verdict.Valid {
				cell.Invalid = verdict.Reason
			}
			grid.Rows[row][position] = cell
		}
	}

	return grid
}

func (s *WorkbookStateService) Export(workbookId string) []contracts.RowValues {
	s.mu.Lock()
	snapshot := s.snapshot(workbookId)
	s.mu.Unlock()

	rows := make([]contracts.RowValues, snapshot.RowCount)
	for row := 0; row < snapshot.RowCount; row++ {
		values := RowValuesAt(snapshot.Columns, snapshot.Cells, row)

		exported := make(contracts.RowValues, len(snapshot.Columns))
		for position := range snapshot.Columns {
			column := &snapshot.Columns[position]
			if column.Type == contracts.ColumnComputed {
				// Live evaluated value, never a stale stored one.
				exported[column.Id] = s.evaluator.Evaluate(column, values).Value
			} else {
				exported[column.Id] = values[column.Id]
			}
		}
		rows[row] = exported
	}

	return rows
}

func (s *WorkbookStateService) SetCell(workbookId string, row int, col int, rawValue string) (*contracts.CellCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	if row < 0 || row >= snapshot.RowCount || col < 0 || col >= len(snapshot.Columns) {
		return nil, fmt.Errorf("row %d col %d: %w", row, col, contracts.CellOutOfRangeError)
	}

	column := &snapshot.Columns[col]
	if column.Type == contracts.ColumnComputed {
		return nil, fmt.Errorf("column %s: %w", column.Id, contracts.ComputedCellReadOnlyError)
	}

	canonical := s.formatter.Canonicalize(column, rawValue)

	next := &contracts.Workbook{
		Columns:  snapshot.Columns,
		Cells:    CloneCells(snapshot.Cells),
		RowCount: snapshot.RowCount,
	}
	next.Cells[row][col] = canonical
	s.settle(workbookId, next)

	return &contracts.CellCommit{
		Raw:        rawValue,
		Canonical:  canonical,
		Validation: s.validator.Validate(column, canonical),
	}, nil
}

func (s *WorkbookStateService) AddColumn(workbookId string, column contracts.Column) (*contracts.Column, error) {
	if column.Type != "" && !contracts.IsKnownColumnType(column.Type) {
		return nil, fmt.Errorf("%s: %w", column.Type, contracts.UnknownColumnTypeError)
	}
	if err := validateFormatOptions(column.Format); err != nil {
		return nil, err
	}

	NormalizeColumn(&column)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	next := &contracts.Workbook{
		Columns:  append(CloneColumns(snapshot.Columns), column),
		RowCount: snapshot.RowCount,
	}
	next.Cells = ReshapeCells(snapshot.Cells, next.RowCount, len(next.Columns))
	s.settle(workbookId, next)

	return &column, nil
}

func (s *WorkbookStateService) UpdateColumn(workbookId string, columnId string, patch contracts.ColumnPatch) (*contracts.Column, error) {
	if patch.Type != nil && !contracts.IsKnownColumnType(*patch.Type) {
		return nil, fmt.Errorf("%s: %w", *patch.Type, contracts.UnknownColumnTypeError)
	}
	if patch.Format != nil {
		if err := validateFormatOptions(*patch.Format); err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	position := FindColumn(snapshot.Columns, columnId)
	if position == -1 {
		return nil, fmt.Errorf("%s: %w", columnId, contracts.ColumnNotFoundError)
	}

	columns := CloneColumns(snapshot.Columns)
	column := &columns[position]

	if patch.Type != nil && *patch.Type != column.Type {
		ApplyColumnType(column, *patch.Type)
	}
	if patch.Name != nil {
		column.Name = *patch.Name
	}
	if patch.Description != nil {
		column.Description = *patch.Description
	}
	if patch.Required != nil && column.Type != contracts.ColumnComputed {
		column.Required = *patch.Required
	}
	if patch.EnumValues != nil && column.Type == contracts.ColumnEnum {
		column.EnumValues = patch.EnumValues
	}
	if patch.Computed != nil && column.Type == contracts.ColumnComputed {
		computed := *patch.Computed
		column.Computed = &computed
	}
	if patch.Format != nil {
		column.Format = *patch.Format
	}

	next := &contracts.Workbook{
		Columns:  columns,
		Cells:    snapshot.Cells,
		RowCount: snapshot.RowCount,
	}
	s.settle(workbookId, next)

	result := *column
	return &result, nil
}

func (s *WorkbookStateService) RemoveColumn(workbookId string, columnId string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	position := FindColumn(snapshot.Columns, columnId)
	if position == -1 {
		return fmt.Errorf("%s: %w", columnId, contracts.ColumnNotFoundError)
	}

	columns := make([]contracts.Column, 0, len(snapshot.Columns)-1)
	columns = append(columns, CloneColumns(snapshot.Columns[:position])...)
	columns = append(columns, CloneColumns(snapshot.Columns[position+1:])...)

	// Computed specs still referencing the removed id are left alone: the
	// id no longer resolves, the evaluator reports it per its input rules.
	next := &contracts.Workbook{
		Columns:  columns,
		Cells:    RemoveCellColumn(snapshot.Cells, position),
		RowCount: snapshot.RowCount,
	}
	s.settle(workbookId, next)

	return nil
}

func (s *WorkbookStateService) SetRowCount(workbookId string, rowCount int) error {
	if rowCount < 0 {
		return fmt.Errorf("%d: %w", rowCount, contracts.RowCountRangeError)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	next := &contracts.Workbook{
		Columns:  snapshot.Columns,
		Cells:    ReshapeCells(snapshot.Cells, rowCount, len(snapshot.Columns)),
		RowCount: rowCount,
	}
	s.settle(workbookId, next)

	return nil
}

func (s *WorkbookStateService) FillDown(workbookId string, row int, col int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)
	if row < 0 || row >= snapshot.RowCount || col < 0 || col >= len(snapshot.Columns) {
		return 0, fmt.Errorf("row %d col %d: %w", row, col, contracts.CellOutOfRangeError)
	}

	cells, filled := FillDownCells(snapshot.Cells, row, col)
	if filled == 0 {
		return 0, nil
	}

	next := &contracts.Workbook{
		Columns:  snapshot.Columns,
		Cells:    cells,
		RowCount: snapshot.RowCount,
	}
	s.settle(workbookId, next)

	return filled, nil
}

func (s *WorkbookStateService) RegenerateSchema(workbookId string, purposeText string) (*contracts.Workbook, error) {
	columns := s.suggester(purposeText)
	for index := range columns {
		NormalizeColumn(&columns[index])
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot(workbookId)

	// Wholesale schema replacement starts from a blank matrix; the
	// position-based copy is for incremental column edits only.
	next := &contracts.Workbook{
		Columns:  columns,
		Cells:    ReshapeCells(nil, snapshot.RowCount, len(columns)),
		RowCount: snapshot.RowCount,
	}
	s.settle(workbookId, next)

	return next, nil
}

// snapshot returns the cached workbook, loading it on first access. The
// repository falls back to the default workbook wholesale on malformed
// persisted state, so this never fails. Callers hold the lock.
func (s *WorkbookStateService) snapshot(workbookId string) *contracts.Workbook {
	workbookId = strings.ToLower(workbookId)

	if cached, ok := s.snapshots[workbookId]; ok {
		return cached
	}

	loaded := s.repository.Load(workbookId)
	s.snapshots[workbookId] = loaded
	return loaded
}

// settle swaps in the new snapshot, then persists and notifies.
// Persistence and webhooks are fire-and-forget collaborators: a failure is
// logged, never propagated into the mutation.
func (s *WorkbookStateService) settle(workbookId string, next *contracts.Workbook) {
	workbookId = strings.ToLower(workbookId)
	s.snapshots[workbookId] = next

	if err := s.repository.Save(workbookId, next); err != nil {
		slog.Warn("workbook persist failed", "workbook_id", workbookId, "error", err)
	}

	s.dispatcher.Notify(workbookId, next)
}
