package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/catalog/internal/security"
)

// loadTemplates parses the page templates from the given directory.
func loadTemplates(templatesPath string) *template.Template {
	return template.Must(template.ParseGlob(templatesPath + "/*.html"))
}

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(security.HeadersMiddleware())

	// CSRF protection for the add-author/add-book forms
	if len(cfg.CSRFSecret) > 0 {
		router.Use(security.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	router.SetHTMLTemplate(loadTemplates(cfg.TemplatesPath))

	// Serve static files
	router.Static("/static", cfg.StaticPath)

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	catalogController := NewCatalogController(cfg.Store)
	authorsController := NewAuthorsController(cfg.Store)
	booksController := NewBooksController(cfg.Store)
	deleteController := NewDeleteController(cfg.Store)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog pages
	router.GET("/", catalogController.HomePage)
	router.GET("/add_author", authorsController.ShowForm)
	router.POST("/add_author", authorsController.Submit)
	router.GET("/add_book", booksController.ShowForm)
	router.POST("/add_book", booksController.Submit)
	router.GET("/book/:id/delete", deleteController.DeleteBook)

	return router
}
