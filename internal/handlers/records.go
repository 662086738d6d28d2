package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"toolcrib/internal/models"
	"toolcrib/internal/store"

	"github.com/gin-gonic/gin"
)

// filterFromQuery reads the list-view filters from the query string.
func filterFromQuery(c *gin.Context) store.RecordFilter {
	return store.RecordFilter{
		ToolType:     c.Query("tool_type"),
		SerialNumber: c.Query("serial_number"),
		Status:       c.Query("status"),
		Location:     c.Query("location"),
	}
}

// filterFromForm reads the same filters from a form post; bulk delete
// sends the current view's filters this way.
func filterFromForm(c *gin.Context) store.RecordFilter {
	return store.RecordFilter{
		ToolType:     c.PostForm("tool_type"),
		SerialNumber: c.PostForm("serial_number"),
		Status:       c.PostForm("status"),
		Location:     c.PostForm("location"),
	}
}

func (h *Handler) Index(c *gin.Context) {
	filter := filterFromQuery(c)

	records, err := h.records.List(filter)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load inventory")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"tools":  records,
		"filter": filter,
	})
}

func (h *Handler) Add(c *gin.Context) {
	rec := models.InventoryRecord{
		ToolType:     strings.TrimSpace(c.PostForm("tool_type")),
		SerialNumber: strings.TrimSpace(c.PostForm("serial_number")),
		Size:         strings.TrimSpace(c.PostForm("size")),
		ThreadType:   strings.TrimSpace(c.PostForm("thread_type")),
		Location:     strings.TrimSpace(c.PostForm("location")),
		Status:       strings.TrimSpace(c.PostForm("status")),
		Description:  strings.TrimSpace(c.PostForm("description")),
	}

	// attachment is optional; report_link stays empty without one
	if file, err := c.FormFile("report_file"); err == nil && file.Filename != "" {
		src, err := file.Open()
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to read attachment: %v", err)
			return
		}
		link, err := h.saver.Save(c.Request.Context(), file.Filename, src)
		src.Close()
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to store attachment: %v", err)
			return
		}
		rec.ReportLink = link
	}

	if err := h.records.Insert(&rec); err != nil {
		if errors.Is(err, store.ErrDuplicateSerial) {
			alertRedirect(c, "Serial number already exists.", "/")
			return
		}
		c.String(http.StatusInternalServerError, "failed to save record")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) ShowEdit(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	rec, err := h.records.Get(uint(id))
	if err != nil {
		c.String(http.StatusNotFound, "record not found")
		return
	}

	render(c, http.StatusOK, "edit.html", gin.H{"item": rec})
}

func (h *Handler) UpdateRecord(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	rec := models.InventoryRecord{
		ToolType:     strings.TrimSpace(c.PostForm("tool_type")),
		SerialNumber: strings.TrimSpace(c.PostForm("serial_number")),
		Size:         strings.TrimSpace(c.PostForm("size")),
		ThreadType:   strings.TrimSpace(c.PostForm("thread_type")),
		Location:     strings.TrimSpace(c.PostForm("location")),
		Status:       strings.TrimSpace(c.PostForm("status")),
		Description:  strings.TrimSpace(c.PostForm("description")),
	}

	if err := h.records.Update(uint(id), rec); err != nil {
		c.String(http.StatusInternalServerError, "failed to update record")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.records.Delete(uint(id)); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete record")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) DeleteSelected(c *gin.Context) {
	var ids []uint
	for _, raw := range c.PostFormArray("ids") {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	if err := h.records.DeleteMany(ids); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete records")
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteAllFiltered removes exactly what the list view shows for the
// same filters.
func (h *Handler) DeleteAllFiltered(c *gin.Context) {
	if err := h.records.DeleteMatching(filterFromForm(c)); err != nil {
		c.String(http.StatusInternalServerError, "failed to delete records")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateDescription(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusBadRequest, "bad id")
		return
	}

	if err := h.records.UpdateDescription(uint(id), c.DefaultPostForm("description", "")); err != nil {
		c.String(http.StatusInternalServerError, "failed to update description")
		return
	}

	c.String(http.StatusOK, "OK")
}
