package router

import (
	"github.com/labstack/echo/v4"

	"github.com/sergioortiz17/devtools-backend/internal/handler"
	"github.com/sergioortiz17/devtools-backend/static"
)

// registerSystemRoutes registers the endpoints outside the API itself:
// dependency status, the docs UI and its assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.Files)

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
