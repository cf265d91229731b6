// Package entities описывает доменные сущности заметок и досок.
package entities

import (
	"time"
	"unicode/utf8"
)

// MaxNoteTextLength - максимальная длина текста заметки в символах.
const MaxNoteTextLength = 250

// Note представляет заметку. BoardID равен nil, если заметка не привязана к доске.
type Note struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	BoardID    *int64    `json:"board_id"`
	ViewsCount int64     `json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewNote создает непривязанную заметку с нулевым счетчиком просмотров.
func NewNote(text string) (*Note, error) {
	if err := ValidateNoteText(text); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &Note{
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ValidateNoteText проверяет текст заметки: непустой, без NUL и не длиннее MaxNoteTextLength.
func ValidateNoteText(text string) error {
	if text == "" {
		return ErrNoteTextEmpty
	}
	if !storable(text) {
		return ErrNoteTextInvalid
	}
	if utf8.RuneCountInString(text) > MaxNoteTextLength {
		return ErrNoteTextTooLong
	}
	return nil
}

// NoteUpdate - изменяемые поля заметки. nil означает "поле не передано".
type NoteUpdate struct {
	Text *string
}

// Validate проверяет переданные поля.
func (u NoteUpdate) Validate() error {
	if u.Text != nil {
		return ValidateNoteText(*u.Text)
	}
	return nil
}

// Apply переносит переданные поля в заметку.
func (u NoteUpdate) Apply(note *Note) {
	if u.Text != nil {
		note.Text = *u.Text
	}
}
