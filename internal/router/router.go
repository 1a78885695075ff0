// Package router builds the echo instance: global middleware, the error
// handler and every route of the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sergioortiz17/devtools-backend/internal/handler"
	"github.com/sergioortiz17/devtools-backend/internal/middleware"
	"github.com/sergioortiz17/devtools-backend/internal/server"
)

// NewRouter wires middleware in the order the logger and tracer depend on:
// the request id must exist before the context logger is built, and the
// New Relic transaction before it is enhanced.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.RateLimit.Limit(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)

	router.GET("/", h.Root.Root)
	router.GET("/health", h.Root.Liveness)

	dictionary := router.Group("/dictionary")
	dictionary.POST("/add", handler.Handle(h.Dictionary.Handler, h.Dictionary.AddWord, http.StatusCreated))
	dictionary.GET("/:word", handler.Handle(h.Dictionary.Handler, h.Dictionary.GetWord, http.StatusOK))

	router.POST("/shopping/total", handler.Handle(h.Shopping.Handler, h.Shopping.CalculateTotal, http.StatusOK))
	router.POST("/word/concat", handler.Handle(h.Words.Handler, h.Words.Concatenate, http.StatusOK))

	return router
}
