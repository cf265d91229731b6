package entities

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Классы ошибок. Граница HTTP отображает их в статусы 422, 404 и 500.
var (
	ErrValidation     = errors.New("validation failed")
	ErrNotFound       = errors.New("not found")
	ErrStorageFailure = errors.New("storage failure")
)

// Ошибки валидации.
var (
	ErrInvalidID         = fmt.Errorf("%w: id must be a positive integer", ErrValidation)
	ErrNoteTextEmpty     = fmt.Errorf("%w: note text cannot be empty", ErrValidation)
	ErrNoteTextTooLong   = fmt.Errorf("%w: note text must be at most %d characters", ErrValidation, MaxNoteTextLength)
	ErrNoteTextRequired  = fmt.Errorf("%w: note text is required", ErrValidation)
	ErrBoardNameRequired = fmt.Errorf("%w: board name is required", ErrValidation)
	ErrBoardNameTooLong  = fmt.Errorf("%w: board name must be at most %d characters", ErrValidation, MaxBoardNameLength)
	ErrNoteTextInvalid   = fmt.Errorf("%w: note text must be valid UTF-8 without NUL characters", ErrValidation)
	ErrBoardNameInvalid  = fmt.Errorf("%w: board name must be valid UTF-8 without NUL characters", ErrValidation)
)

// Ошибки отсутствия сущности.
var (
	ErrNoteNotFound  = fmt.Errorf("note %w", ErrNotFound)
	ErrBoardNotFound = fmt.Errorf("board %w", ErrNotFound)
)

// storable сообщает, может ли PostgreSQL сохранить строку в колонке text/varchar.
func storable(s string) bool {
	return utf8.ValidString(s) && !strings.ContainsRune(s, 0)
}

// ValidateID проверяет идентификатор сущности.
func ValidateID(id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}
	return nil
}
