package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/sergioortiz17/devtools-backend/internal/model"
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

type ShoppingHandler struct {
	Handler
	shoppingService *service.ShoppingService
}

func NewShoppingHandler(s *server.Server, shoppingService *service.ShoppingService) *ShoppingHandler {
	return &ShoppingHandler{
		Handler:         NewHandler(s),
		shoppingService: shoppingService,
	}
}

// CalculateTotal handles POST /shopping/total.
func (h *ShoppingHandler) CalculateTotal(c echo.Context, req *model.ShoppingTotalRequest) (*model.ShoppingTotalResponse, error) {
	return h.shoppingService.CalculateTotal(c.Request().Context(), req), nil
}
