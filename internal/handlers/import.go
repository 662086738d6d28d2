package handlers

import (
	"errors"
	"net/http"
	"strings"

	"toolcrib/internal/importer"

	"github.com/gin-gonic/gin"
)

// UploadExcel bulk-imports records from an .xlsx workbook. Duplicate
// serials are skipped and reported back in one summary alert.
func (h *Handler) UploadExcel(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		alertRedirect(c, "Please select a valid Excel file.", "/")
		return
	}

	src, err := file.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to read file: %v", err)
		return
	}
	defer src.Close()

	res, err := h.importer.ImportXLSX(file.Filename, src)
	if err != nil {
		if errors.Is(err, importer.ErrInvalidFileType) {
			alertRedirect(c, "Please select a valid Excel file.", "/")
			return
		}
		c.String(http.StatusInternalServerError, "import failed: %v", err)
		return
	}

	if len(res.SkippedSerials) > 0 {
		alertRedirect(c, "Duplicate serial numbers were skipped: "+strings.Join(res.SkippedSerials, ", "), "/")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
