package handlers

import (
	"html/template"
	"net/http"

	"toolcrib/internal/models"

	"github.com/gin-gonic/gin"
)

// render wraps c.HTML and threads the logged-in user into every
// template.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	// defaults so templates can compare these without nil checks
	data["CurrentUsername"] = ""
	data["CurrentUserRole"] = models.UserRole("")

	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUsername"] = u.Username
			data["CurrentUserRole"] = u.Role
		}
	}

	c.HTML(status, tmpl, data)
}

// alertRedirect surfaces an error as a browser alert and sends the
// user back to target. This is the single notification channel for
// duplicate serials, bad import files and the like.
func alertRedirect(c *gin.Context, msg, target string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8",
		[]byte("<script>alert('"+template.JSEscapeString(msg)+"'); window.location.href='"+target+"';</script>"))
}
