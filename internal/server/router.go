package server

import (
	"net/http"

	"toolcrib/internal/config"
	"toolcrib/internal/handlers"
	"toolcrib/internal/middleware"
	"toolcrib/internal/models"
	"toolcrib/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB, saver *storage.Saver) *gin.Engine {
	r := gin.Default()

	r.LoadHTMLGlob(cfg.TemplatesGlob)

	// uploaded reports resolve under /static/reports/<name>
	r.Static("/static/reports", cfg.UploadDir)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("toolcrib_session", store))

	r.Use(middleware.InjectUser(db))

	h := handlers.New(db, saver)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// registration is admin-only
	auth.GET("/register",
		middleware.RequireRole(models.RoleAdmin),
		h.ShowRegister,
	)
	auth.POST("/register",
		middleware.RequireRole(models.RoleAdmin),
		h.Register,
	)

	// read-only: any authenticated user
	auth.GET("/", h.Index)
	auth.GET("/edit/:id", h.ShowEdit)

	// mutating routes: admin + senior expert inspection
	mutate := middleware.RequireRole(models.MutatingRoles...)

	auth.POST("/add", mutate, h.Add)
	auth.POST("/edit/:id", mutate, h.UpdateRecord)
	auth.GET("/delete/:id", mutate, h.Delete)
	auth.POST("/delete_selected", mutate, h.DeleteSelected)
	auth.POST("/delete_all_filtered", mutate, h.DeleteAllFiltered)
	auth.POST("/update_description/:id", mutate, h.UpdateDescription)
	auth.POST("/upload_excel", mutate, h.UploadExcel)
	auth.POST("/upload_report/:id", mutate, h.UploadReport)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
