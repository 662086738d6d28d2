package store

import (
	"errors"

	"toolcrib/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicateSerial is returned when an insert would reuse an
// existing serial number.
var ErrDuplicateSerial = errors.New("serial number already exists")

// RecordStore owns the inventory table. Mutations on an id that does
// not exist affect zero rows and return nil; callers cannot tell the
// two apart, matching the original contract.
type RecordStore struct {
	db *gorm.DB
}

func NewRecordStore(db *gorm.DB) *RecordStore {
	return &RecordStore{db: db}
}

// List returns records matching the filter in primary-key order.
func (s *RecordStore) List(f RecordFilter) ([]models.InventoryRecord, error) {
	var records []models.InventoryRecord
	err := f.apply(s.db.Model(&models.InventoryRecord{})).
		Order("id asc").
		Find(&records).Error
	return records, err
}

func (s *RecordStore) Get(id uint) (*models.InventoryRecord, error) {
	var rec models.InventoryRecord
	if err := s.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// Insert creates a record after checking the serial number is unused.
// Check and insert run in one transaction; the unique index on
// serial_number backstops the race between concurrent inserts.
func (s *RecordStore) Insert(rec *models.InventoryRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.InventoryRecord{}).
			Where("serial_number = ?", rec.SerialNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSerial
		}
		return tx.Create(rec).Error
	})
}

// Update rewrites every editable field of the record. A map keeps
// empty strings writable; gorm skips zero values on struct updates.
func (s *RecordStore) Update(id uint, rec models.InventoryRecord) error {
	return s.db.Model(&models.InventoryRecord{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"tool_type":     rec.ToolType,
			"serial_number": rec.SerialNumber,
			"size":          rec.Size,
			"thread_type":   rec.ThreadType,
			"location":      rec.Location,
			"status":        rec.Status,
			"description":   rec.Description,
		}).Error
}

func (s *RecordStore) UpdateDescription(id uint, text string) error {
	return s.db.Model(&models.InventoryRecord{}).
		Where("id = ?", id).
		Update("description", text).Error
}

func (s *RecordStore) UpdateReportLink(id uint, url string) error {
	return s.db.Model(&models.InventoryRecord{}).
		Where("id = ?", id).
		Update("report_link", url).Error
}

func (s *RecordStore) Delete(id uint) error {
	return s.db.Delete(&models.InventoryRecord{}, id).Error
}

func (s *RecordStore) DeleteMany(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Delete(&models.InventoryRecord{}, ids).Error
}

// DeleteMatching removes exactly the set List would return for the
// same filter.
func (s *RecordStore) DeleteMatching(f RecordFilter) error {
	tx := f.apply(s.db.Model(&models.InventoryRecord{}))
	if f.IsZero() {
		tx = tx.Where("1 = 1")
	}
	return tx.Delete(&models.InventoryRecord{}).Error
}
