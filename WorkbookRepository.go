package main

import (
	"log/slog"
	"strings"

	json "github.com/bytedance/sonic"
	"go.etcd.io/bbolt"

	"gridBook/contracts"
)

const workbooksBucket = "workbooks"

const DefaultRowCount = 20

// BoltWorkbookRepository persists one JSON-encoded snapshot per workbook
// id in a single bbolt bucket.
type BoltWorkbookRepository struct {
	db *bbolt.DB
}

func NewBoltWorkbookRepository(db *bbolt.DB) *BoltWorkbookRepository {
	return &BoltWorkbookRepository{db: db}
}

// Load returns the stored snapshot, reshaped to its own declared
// dimensions so no caller ever sees a ragged matrix. Missing or malformed
// state falls back to the default workbook wholesale; a half-parsed
// snapshot is never hydrated.
func (r *BoltWorkbookRepository) Load(workbookId string) *contracts.Workbook {
	workbookId = strings.ToLower(workbookId)

	var stored []byte
	_ = r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(workbooksBucket))
		if bucket == nil {
			return nil
		}

		if value := bucket.Get([]byte(workbookId)); value != nil {
			stored = make([]byte, len(value))
			copy(stored, value)
		}
		return nil
	})

	if stored == nil {
		return DefaultWorkbook()
	}

	snapshot := &contracts.Workbook{}
	if err := json.Unmarshal(stored, snapshot); err != nil {
		slog.Warn("malformed workbook snapshot, falling back to defaults",
			"workbook_id", workbookId, "error", err)
		return DefaultWorkbook()
	}

	if snapshot.RowCount < 0 {
		snapshot.RowCount = 0
	}
	snapshot.Cells = ReshapeCells(snapshot.Cells, snapshot.RowCount, len(snapshot.Columns))

	return snapshot
}

func (r *BoltWorkbookRepository) Save(workbookId string, snapshot *contracts.Workbook) error {
	workbookId = strings.ToLower(workbookId)

	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return r.db.Batch(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(workbooksBucket))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(workbookId), encoded)
	})
}

// DefaultWorkbook is the blank-slate state: the generic suggested schema
// over an empty matrix.
func DefaultWorkbook() *contracts.Workbook {
	columns := StaticSchemaSuggester("")
	for index := range columns {
		NormalizeColumn(&columns[index])
	}

	return &contracts.Workbook{
		Columns:  columns,
		Cells:    ReshapeCells(nil, DefaultRowCount, len(columns)),
		RowCount: DefaultRowCount,
	}
}
