package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jyogi-studio/jyogi-manager-api/config"
	"github.com/jyogi-studio/jyogi-manager-api/models"
	"github.com/jyogi-studio/jyogi-manager-api/utils"
	"gorm.io/gorm"
)

// ErrStorageLocked means the workbook file is held open by another process.
// The write is abandoned and in-memory state is unchanged; the user has to
// close the other program and save again.
var ErrStorageLocked = errors.New("workbook is locked by another program - close it and save again")

// Workbook is the in-memory form of the whole store: every table, as rows
type Workbook map[string][]models.Row

// Rows returns the rows of the given table, never nil for a known table
func (w Workbook) Rows(table string) []models.Row {
	return w[table]
}

// Find returns the row with the given ID in the given table
func (w Workbook) Find(table, id string) (models.Row, bool) {
	for _, row := range w[table] {
		if row["ID"] == id {
			return row, true
		}
	}
	return nil, false
}

// RemoveDesign deletes the design with the given ID together with every
// review whose Design ID matches it. Returns false when no such design
// exists; the workbook is unchanged in that case.
func (w Workbook) RemoveDesign(id string) bool {
	designs := w[models.TableDesigns]
	kept := make([]models.Row, 0, len(designs))
	found := false
	for _, row := range designs {
		if row["ID"] == id {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if !found {
		return false
	}
	w[models.TableDesigns] = kept

	reviews := w[models.TableReviews]
	keptReviews := make([]models.Row, 0, len(reviews))
	for _, row := range reviews {
		if row["Design ID"] == id {
			continue
		}
		keptReviews = append(keptReviews, row)
	}
	w[models.TableReviews] = keptReviews
	return true
}

// WorkbookService is the durable load/save boundary for all six tables.
// Both directions re-normalize every row, so a table edited through a
// partial view can never desynchronize column shape, and sanitization on
// save holds the plain-text invariant even if an in-memory edit bypassed
// the sanitizer.
type WorkbookService interface {
	// EnsureWorkbook creates any missing tables, empty and schema-shaped
	EnsureWorkbook() error

	// LoadAll reads every table. Unreadable storage yields all tables
	// empty rather than an error.
	LoadAll() (Workbook, error)

	// SaveAll replaces every table in one transaction. Returns
	// ErrStorageLocked when the destination is held open elsewhere.
	SaveAll(wb Workbook) error
}

// gormWorkbookService implements WorkbookService over the configured gorm store
type gormWorkbookService struct{}

var workbookServiceInstance WorkbookService

// InitWorkbookService initializes the workbook service over config.GetDB
func InitWorkbookService() WorkbookService {
	workbookServiceInstance = &gormWorkbookService{}
	return workbookServiceInstance
}

// GetWorkbookService returns the initialized workbook service instance
func GetWorkbookService() WorkbookService {
	return workbookServiceInstance
}

// SetWorkbookService sets the workbook service instance (primarily for testing)
func SetWorkbookService(service WorkbookService) {
	workbookServiceInstance = service
}

// NormalizeTable forces every row of the given table into schema shape:
// missing columns are synthesized as empty text, columns outside the schema
// are dropped, every value is sanitized, and a fresh unique ID is assigned
// wherever the stored one is empty or a placeholder token.
func NormalizeTable(table string, rows []models.Row) []models.Row {
	cols := models.ColumnsOf(table)
	if cols == nil {
		return nil
	}

	out := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		n := make(models.Row, len(cols))
		for _, col := range cols {
			n[col] = utils.Sanitize(row[col])
		}
		if isPlaceholderID(n["ID"]) {
			n["ID"] = uuid.NewString()
		}
		out = append(out, n)
	}
	return out
}

// isPlaceholderID matches IDs that never identify a row: empty strings and
// the literal none/nan tokens older workbooks carry.
func isPlaceholderID(id string) bool {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "", "none", "nan":
		return true
	}
	return false
}

// EnsureWorkbook migrates the six table schemas. Failures are reported but
// callers treat them as retryable on the next load or save.
func (s *gormWorkbookService) EnsureWorkbook() error {
	db := config.GetDB()
	if db == nil {
		return fmt.Errorf("workbook store is not connected")
	}
	return db.AutoMigrate(
		&models.Order{},
		&models.Healing{},
		&models.Design{},
		&models.Supplier{},
		&models.Review{},
		&models.Reading{},
	)
}

// LoadAll reads every table in the registry and normalizes each row.
// A table that cannot be read leaves the whole workbook empty, so the user
// can keep working instead of crashing on corrupt storage.
func (s *gormWorkbookService) LoadAll() (Workbook, error) {
	if err := s.EnsureWorkbook(); err != nil {
		log.Printf("ensure workbook failed (will retry on next save): %v", err)
	}

	wb := emptyWorkbook()
	db := config.GetDB()
	if db == nil {
		return wb, nil
	}

	for _, table := range models.TableNames {
		rows, err := readTable(db, table)
		if err != nil {
			log.Printf("workbook read failed on %s, falling back to empty tables: %v", table, err)
			return emptyWorkbook(), nil
		}
		wb[table] = NormalizeTable(table, rows)
	}
	return wb, nil
}

// SaveAll re-normalizes every table and writes all six back in a single
// transaction. Tables absent from wb are written empty.
func (s *gormWorkbookService) SaveAll(wb Workbook) error {
	db := config.GetDB()
	if db == nil {
		return fmt.Errorf("workbook store is not connected")
	}

	normalized := make(Workbook, len(models.TableNames))
	for _, table := range models.TableNames {
		normalized[table] = NormalizeTable(table, wb[table])
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, table := range models.TableNames {
			if err := writeTable(tx, table, normalized[table]); err != nil {
				return fmt.Errorf("write %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		if isLockedError(err) {
			return ErrStorageLocked
		}
		return fmt.Errorf("workbook save failed: %w", err)
	}
	return nil
}

func emptyWorkbook() Workbook {
	wb := make(Workbook, len(models.TableNames))
	for _, table := range models.TableNames {
		wb[table] = []models.Row{}
	}
	return wb
}

// isLockedError matches the lock-contention shapes of both backends
func isLockedError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked") ||
		strings.Contains(msg, "lock timeout") ||
		strings.Contains(msg, "could not obtain lock")
}

// rowSource is any table model convertible to its untyped row form
type rowSource interface {
	ToRow() models.Row
}

// rowSink is a pointer to a table model fillable from an untyped row
type rowSink[T any] interface {
	*T
	FromRow(models.Row)
}

func findRows[T rowSource](db *gorm.DB) ([]models.Row, error) {
	var recs []T
	if err := db.Find(&recs).Error; err != nil {
		return nil, err
	}
	rows := make([]models.Row, len(recs))
	for i := range recs {
		rows[i] = recs[i].ToRow()
	}
	return rows, nil
}

func replaceRows[T rowSource, PT rowSink[T]](tx *gorm.DB, rows []models.Row) error {
	if err := tx.Where("1 = 1").Delete(new(T)).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	recs := make([]T, len(rows))
	for i, row := range rows {
		PT(&recs[i]).FromRow(row)
	}
	return tx.Create(&recs).Error
}

func readTable(db *gorm.DB, table string) ([]models.Row, error) {
	switch table {
	case models.TableOrders:
		return findRows[models.Order](db)
	case models.TableHealings:
		return findRows[models.Healing](db)
	case models.TableDesigns:
		return findRows[models.Design](db)
	case models.TableSuppliers:
		return findRows[models.Supplier](db)
	case models.TableReviews:
		return findRows[models.Review](db)
	case models.TableReadings:
		return findRows[models.Reading](db)
	}
	return nil, fmt.Errorf("unknown table %q", table)
}

func writeTable(tx *gorm.DB, table string, rows []models.Row) error {
	switch table {
	case models.TableOrders:
		return replaceRows[models.Order](tx, rows)
	case models.TableHealings:
		return replaceRows[models.Healing](tx, rows)
	case models.TableDesigns:
		return replaceRows[models.Design](tx, rows)
	case models.TableSuppliers:
		return replaceRows[models.Supplier](tx, rows)
	case models.TableReviews:
		return replaceRows[models.Review](tx, rows)
	case models.TableReadings:
		return replaceRows[models.Reading](tx, rows)
	}
	return fmt.Errorf("unknown table %q", table)
}
