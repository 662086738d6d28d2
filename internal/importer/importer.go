package importer

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"toolcrib/internal/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ErrInvalidFileType is returned when the uploaded file is not an
// .xlsx workbook.
var ErrInvalidFileType = errors.New("invalid file type, expected .xlsx")

// Result summarizes one import pass.
type Result struct {
	Inserted       int
	SkippedSerials []string
}

// Importer reads a workbook and bulk-inserts inventory records.
type Importer struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// cell returns column i of a row; excelize drops trailing empty cells.
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// ImportXLSX processes the active sheet of the workbook. The first row
// is the header and is always skipped; rows with an empty first cell
// are skipped as blank separators; the six leading columns map to
// tool_type, serial_number, size, thread_type, location, status.
// Rows whose serial number already exists are skipped and reported in
// the result. The whole pass commits as one transaction.
func (im *Importer) ImportXLSX(filename string, r io.Reader) (*Result, error) {
	if !strings.EqualFold(filepath.Ext(filename), ".xlsx") {
		return nil, ErrInvalidFileType
	}

	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, ErrInvalidFileType
	}
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(wb.GetActiveSheetIndex()))
	if err != nil {
		return nil, err
	}

	res := &Result{}
	err = im.db.Transaction(func(tx *gorm.DB) error {
		for idx, row := range rows {
			if idx == 0 {
				continue // header
			}
			if cell(row, 0) == "" {
				continue
			}

			serial := cell(row, 1)

			var count int64
			if err := tx.Model(&models.InventoryRecord{}).
				Where("serial_number = ?", serial).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				res.SkippedSerials = append(res.SkippedSerials, serial)
				continue
			}

			rec := models.InventoryRecord{
				ToolType:     cell(row, 0),
				SerialNumber: serial,
				Size:         cell(row, 2),
				ThreadType:   cell(row, 3),
				Location:     cell(row, 4),
				Status:       cell(row, 5),
			}
			if err := tx.Create(&rec).Error; err != nil {
				return err
			}
			res.Inserted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
