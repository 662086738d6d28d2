package handlers

import (
	"errors"
	"net/http"
	"strings"

	"toolcrib/internal/models"
	"toolcrib/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid form data"})
		return
	}

	user, err := h.users.Authenticate(form.Username, form.Password)
	if err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

func (h *Handler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.html", gin.H{"error": ""})
}

type registerForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// Register creates a user account. The route itself is admin-gated;
// admins can only be created from config, not through the form.
func (h *Handler) Register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid form data"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if len(form.Username) < 3 || len(form.Password) < 6 {
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Username or password too short"})
		return
	}

	role := models.UserRole(form.Role)
	switch role {
	case models.RoleSeniorExpert, models.RoleMember:
		// ok
	default:
		render(c, http.StatusBadRequest, "register.html", gin.H{"error": "Invalid role"})
		return
	}

	if _, err := h.users.Create(form.Username, form.Password, role); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			render(c, http.StatusBadRequest, "register.html", gin.H{"error": "User already exists"})
			return
		}
		render(c, http.StatusInternalServerError, "register.html", gin.H{"error": "Failed to save user"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}
