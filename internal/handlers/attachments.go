package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// UploadReport attaches an inspection report to an existing record.
// The file is written locally and mirrored to the object store when
// one is configured; a mirror failure fails the request outright.
func (h *Handler) UploadReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	file, err := c.FormFile("report_file")
	if err != nil || file.Filename == "" {
		// nothing uploaded, nothing to change
		c.Redirect(http.StatusFound, "/")
		return
	}

	src, err := file.Open()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to read attachment: %v", err)
		return
	}
	defer src.Close()

	link, err := h.saver.Save(c.Request.Context(), file.Filename, src)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to store attachment: %v", err)
		return
	}

	if err := h.records.UpdateReportLink(uint(id), link); err != nil {
		c.String(http.StatusInternalServerError, "failed to update record")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
