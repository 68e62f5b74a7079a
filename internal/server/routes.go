package server

import (
	"github.com/labstack/echo/v4"

	"kgraph/internal/config"
	"kgraph/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo, cfg *config.Config) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	e.GET("/", routes.IndexHandler)
	e.POST("/upload", routes.UploadPDFHandler)

	// Generated graph images are served straight from disk.
	e.Static("/generated", cfg.GeneratedDir)
}
