package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sergioortiz17/devtools-backend/internal/server"
)

type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

type rootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// Root reports the API name and version and where the docs live.
func (h *RootHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Message: h.server.Config.App.Name,
		Version: h.server.Config.App.Version,
		Docs:    "/docs",
	})
}

// Liveness answers as long as the process serves requests. Dependency
// checks live on /status.
func (h *RootHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
