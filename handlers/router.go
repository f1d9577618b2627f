package handlers

import (
	"embed"
	"html/template"
	"todolist/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFiles embed.FS

// NewRouter builds the gin engine with the list page at "/" and the JSON API under "/api".
func NewRouter() (*gin.Engine, error) {
	tmpl, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, err
	}

	r := gin.Default()
	r.Use(RequestID())
	if config.Settings.CORSEnabled {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
			ExposeHeaders:   []string{"Content-Length", RequestIDHeader},
		}))
	}
	r.SetHTMLTemplate(tmpl)

	// The list page: POST creates, anything else renders
	r.Any("/", HomePage)

	api := r.Group("/api")
	{
		api.GET("/items", ListItemsV2)
		api.POST("/items", CreateItemV2)

		api.GET("/health", HealthCheck)
		api.GET("/metrics", GetMetrics)
	}

	return r, nil
}
