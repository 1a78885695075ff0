// Package repository handles all interactions with the database.
//
// It contains the SQL for the dictionary store and exposes it through
// interfaces so the service layer can be tested against mocks.
package repository

import (
	"github.com/sergioortiz17/devtools-backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Dictionary DictionaryStore
}

// NewRepositories constructs the repositories over the server's database.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Dictionary: NewDictionaryStore(s.DB.DB),
	}
}
