// Package service contains the business logic.
//
// It sits between the handler and repository layers: handlers pass in
// validated requests, services apply the dictionary rules and the shopping
// and word calculations, and call repositories for persistence.
package service

import (
	"github.com/sergioortiz17/devtools-backend/internal/repository"
	"github.com/sergioortiz17/devtools-backend/internal/server"
)

type Services struct {
	Dictionary *DictionaryService
	Shopping   *ShoppingService
	Words      *WordService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	dictionary := NewDictionaryService(repos.Dictionary)

	// A nil *DefinitionCache or *JobService must not become a non-nil interface.
	if s.Cache != nil {
		dictionary = dictionary.WithCache(s.Cache)
	}
	if s.Job != nil {
		dictionary = dictionary.WithEvents(s.Job)
	}

	return &Services{
		Dictionary: dictionary,
		Shopping:   NewShoppingService(),
		Words:      NewWordService(),
	}, nil
}
