package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

type DictionaryHandler struct {
	Handler
	dictionaryService *service.DictionaryService
}

func NewDictionaryHandler(s *server.Server, dictionaryService *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{
		Handler:           NewHandler(s),
		dictionaryService: dictionaryService,
	}
}

// AddWord handles POST /dictionary/add.
func (h *DictionaryHandler) AddWord(c echo.Context, req *model.AddWordRequest) (*model.AddWordResponse, error) {
	entry, err := h.dictionaryService.AddWord(c.Request().Context(), req.Word, req.Definition)
	if err != nil {
		return nil, domainError(err)
	}

	return &model.AddWordResponse{
		Message: fmt.Sprintf("Word '%s' added successfully", entry.Word),
		Word:    entry.Word,
	}, nil
}

// GetWord handles GET /dictionary/:word.
func (h *DictionaryHandler) GetWord(c echo.Context, req *model.GetWordRequest) (*model.WordDefinitionResponse, error) {
	entry, err := h.dictionaryService.GetWord(c.Request().Context(), req.Word)
	if err != nil {
		return nil, domainError(err)
	}

	return &model.WordDefinitionResponse{
		Word:       entry.Word,
		Definition: entry.Definition,
	}, nil
}
