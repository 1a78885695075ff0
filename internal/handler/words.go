package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

type WordHandler struct {
	Handler
	wordService *service.WordService
}

func NewWordHandler(s *server.Server, wordService *service.WordService) *WordHandler {
	return &WordHandler{
		Handler:     NewHandler(s),
		wordService: wordService,
	}
}

// Concatenate handles POST /word/concat.
func (h *WordHandler) Concatenate(c echo.Context, req *model.WordConcatRequest) (*model.WordConcatResponse, error) {
	return h.wordService.Concatenate(c.Request().Context(), req), nil
}
