package model

import (
	"fmt"
	"time"
)

// DictionaryEntry is a row of the dictionary_entries table.
//
// Word keeps the casing it was added with; uniqueness is enforced on
// lower(word) by the store.
type DictionaryEntry struct {
	ID         int64     `db:"id" json:"id"`
	Word       string    `db:"word" json:"word"`
	Definition string    `db:"definition" json:"definition"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

func (e DictionaryEntry) String() string {
	return fmt.Sprintf("DictionaryEntry(id=%d, word=%q)", e.ID, e.Word)
}

// AddWordRequest is the body of POST /dictionary/add.
type AddWordRequest struct {
	Word       string `json:"word" validate:"required"`
	Definition string `json:"definition" validate:"required"`
}

func (r *AddWordRequest) Validate() error {
	return validate.Struct(r)
}

// AddWordResponse is returned with 201 Created.
type AddWordResponse struct {
	Message string `json:"message"`
	Word    string `json:"word"`
}

// GetWordRequest binds the :word path parameter of GET /dictionary/:word.
type GetWordRequest struct {
	Word string `param:"word" validate:"required"`
}

func (r *GetWordRequest) Validate() error {
	return validate.Struct(r)
}

// WordDefinitionResponse is the body of a successful lookup.
type WordDefinitionResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}
