package handler

import (
	"github.com/sergioortiz17/devtools-backend/internal/server"
	"github.com/sergioortiz17/devtools-backend/internal/service"
)

// Handlers groups all HTTP handlers so the router receives a single value.
type Handlers struct {
	Root       *RootHandler
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Dictionary *DictionaryHandler
	Shopping   *ShoppingHandler
	Words      *WordHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:       NewRootHandler(s),
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Dictionary: NewDictionaryHandler(s, services.Dictionary),
		Shopping:   NewShoppingHandler(s, services.Shopping),
		Words:      NewWordHandler(s, services.Words),
	}
}
