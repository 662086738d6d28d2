package models

import "time"

// InventoryRecord is one physical tool or instrument in the crib.
// Serial numbers are unique; the check happens in the store before
// insert and is backed by the unique index below.
type InventoryRecord struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	ToolType     string `gorm:"size:255"`
	SerialNumber string `gorm:"size:255;uniqueIndex"`
	Size         string `gorm:"size:100"`
	ThreadType   string `gorm:"size:100"`
	Location     string `gorm:"size:255"`
	Status       string `gorm:"size:100"`
	ReportLink   string `gorm:"size:512"` // empty = no attachment
	Description  string `gorm:"type:text"`
}

func (InventoryRecord) TableName() string {
	return "inventory"
}
