package middleware

import (
	"github.com/labstack/echo/v4"

	"kgraph/internal/config"
	"kgraph/internal/storage"
	"kgraph/pkg/ai"
	"kgraph/pkg/loader"
)

// App bundles the collaborators every request handler needs.
type App struct {
	Config   *config.Config
	AiClient ai.CompletionClient
	Loader   loader.DocumentLoader
	Store    *storage.Disk
}

// AppContext wraps the echo context with the application state.
type AppContext struct {
	echo.Context
	App *App
}

// AppContextMiddleware attaches the shared App to every request context.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app})
		}
	}
}
