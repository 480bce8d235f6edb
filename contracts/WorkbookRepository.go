package contracts

type WorkbookRepository interface {
	// Load returns the persisted snapshot for a workbook id, or the
	// default workbook wholesale when nothing is stored or the stored
	// bytes fail to parse. It never partially hydrates.
	Load(workbookId string) *Workbook

	Save(workbookId string, snapshot *Workbook) error
}
