package store

import "gorm.io/gorm"

// RecordFilter holds the optional substring constraints of the list
// view. The zero value matches every record. The same filter value
// drives both List and DeleteMatching, so whatever the filtered view
// shows is exactly what bulk delete removes.
type RecordFilter struct {
	ToolType     string
	SerialNumber string
	Status       string
	Location     string
}

func (f RecordFilter) IsZero() bool {
	return f.ToolType == "" && f.SerialNumber == "" && f.Status == "" && f.Location == ""
}

// apply adds one parameterized LIKE clause per non-empty field,
// case-insensitive on every engine.
func (f RecordFilter) apply(tx *gorm.DB) *gorm.DB {
	if f.ToolType != "" {
		tx = tx.Where("LOWER(tool_type) LIKE LOWER(?)", "%"+f.ToolType+"%")
	}
	if f.SerialNumber != "" {
		tx = tx.Where("LOWER(serial_number) LIKE LOWER(?)", "%"+f.SerialNumber+"%")
	}
	if f.Status != "" {
		tx = tx.Where("LOWER(status) LIKE LOWER(?)", "%"+f.Status+"%")
	}
	if f.Location != "" {
		tx = tx.Where("LOWER(location) LIKE LOWER(?)", "%"+f.Location+"%")
	}
	return tx
}
