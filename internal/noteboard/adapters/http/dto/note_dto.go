// Package dto содержит структуры запросов и ответов HTTP API.
package dto

import (
	"time"

	"noteboard/internal/noteboard/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Text *string `json:"text"`
}

// UpdateNoteRequest содержит данные для частичного обновления заметки.
type UpdateNoteRequest struct {
	Text *string `json:"text"`
}

// ToUpdate переводит запрос в доменное обновление.
func (r UpdateNoteRequest) ToUpdate() entities.NoteUpdate {
	return entities.NoteUpdate{Text: r.Text}
}

// Note представляет заметку в ответе.
type Note struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	BoardID    *int64    `json:"board_id"`
	ViewsCount int64     `json:"views_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteFromEntity строит ответ по доменной заметке.
func NoteFromEntity(n *entities.Note) *Note {
	return &Note{
		ID:         n.ID,
		Text:       n.Text,
		BoardID:    n.BoardID,
		ViewsCount: n.ViewsCount,
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
