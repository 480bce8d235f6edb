package contracts

type WorkbookService interface {
	Get(workbookId string) *Workbook
	GetGrid(workbookId string) *Grid

	// Export returns row-major data, one map per row keyed by column id.
	// Stored columns export their as-stored value; computed columns export
	// the live evaluated value (empty on computation error).
	Export(workbookId string) []RowValues

	SetCell(workbookId string, row int, col int, rawValue string) (*CellCommit, error)

	AddColumn(workbookId string, column Column) (*Column, error)
	UpdateColumn(workbookId string, columnId string, patch ColumnPatch) (*Column, error)
	RemoveColumn(workbookId string, columnId string) error

	SetRowCount(workbookId string, rowCount int) error

	// FillDown copies the source cell value into consecutive empty cells
	// below it and returns how many cells were filled.
	FillDown(workbookId string, row int, col int) (int, error)

	RegenerateSchema(workbookId string, purposeText string) (*Workbook, error)
}
