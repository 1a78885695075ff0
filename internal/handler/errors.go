package handler

import (
	"errors"

	"github.com/sergioortiz17/devtools-backend/internal/errs"
	"github.com/sergioortiz17/devtools-backend/internal/model"
)

// domainError maps dictionary rule violations onto API errors. Anything
// else is returned as is for the global error handler.
func domainError(err error) error {
	var wordErr *model.WordError
	var inputErr *model.InputError

	switch {
	case errors.As(err, &wordErr) && errors.Is(err, model.ErrWordAlreadyExists):
		code := errs.CodeWordAlreadyExists
		return errs.NewConflictError(wordErr.Error(), true, &code)

	case errors.As(err, &wordErr) && errors.Is(err, model.ErrWordNotFound):
		code := errs.CodeWordNotFound
		return errs.NewNotFoundError(wordErr.Error(), true, &code)

	case errors.As(err, &inputErr):
		code := errs.CodeInvalidInput
		return errs.NewBadRequestError(inputErr.Error(), true, &code, nil)

	case errors.Is(err, model.ErrInvalidInput):
		code := errs.CodeInvalidInput
		return errs.NewBadRequestError(err.Error(), true, &code, nil)
	}

	return err
}
