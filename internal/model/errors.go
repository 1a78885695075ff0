package model

import (
	"errors"
	"fmt"
)

// Dictionary rule violations. Callers match them with errors.Is.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrWordNotFound      = errors.New("word not found")
	ErrWordAlreadyExists = errors.New("word already exists")
)

var (
	ErrEmptyWord       = &InputError{Message: "Word cannot be empty"}
	ErrEmptyDefinition = &InputError{Message: "Definition cannot be empty"}
)

// InputError is an ErrInvalidInput with a message fit for clients.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// WordError ties a dictionary rule violation to the word that caused it.
type WordError struct {
	Word string
	Err  error
}

func NewWordNotFoundError(word string) *WordError {
	return &WordError{Word: word, Err: ErrWordNotFound}
}

func NewWordAlreadyExistsError(word string) *WordError {
	return &WordError{Word: word, Err: ErrWordAlreadyExists}
}

func (e *WordError) Error() string {
	switch {
	case errors.Is(e.Err, ErrWordNotFound):
		return fmt.Sprintf("Word '%s' not found in dictionary", e.Word)
	case errors.Is(e.Err, ErrWordAlreadyExists):
		return fmt.Sprintf("Word '%s' already exists in dictionary", e.Word)
	default:
		return fmt.Sprintf("Word '%s': %v", e.Word, e.Err)
	}
}

func (e *WordError) Unwrap() error {
	return e.Err
}
